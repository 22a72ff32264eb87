package fulfillment

import "erp-backend/internal/models"

// Event - Motorun başarılı işlemlerinde yayılan olay
type Event interface {
	Type() string
}

// EventDispatcher - Olay aboneliği (aktivite kaydı vb.). Dispatch hatası
// işlemi geri döndürmez; defter zaten yazılmıştır.
type EventDispatcher interface {
	Dispatch(event Event) error
}

type PurchaseOrderCreated struct {
	PurchaseOrder models.PurchaseOrder
}

func (PurchaseOrderCreated) Type() string { return "purchase_order.created" }

type SalesOrderCreated struct {
	Order models.Order
}

func (SalesOrderCreated) Type() string { return "order.created" }

type PurchaseOrderReceived struct {
	PurchaseOrder models.PurchaseOrder
	Amount        float64 // defterlere işlenen gider tutarı
}

func (PurchaseOrderReceived) Type() string { return "purchase_order.received" }

type OrderShipped struct {
	Order   models.Order
	Invoice models.Invoice
}

func (OrderShipped) Type() string { return "order.shipped" }

type OrderDelivered struct {
	Order models.Order
}

func (OrderDelivered) Type() string { return "order.delivered" }

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(Event) error { return nil }
