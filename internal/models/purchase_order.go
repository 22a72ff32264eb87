package models

import "time"

// PurchaseOrderStatus - Satın alma siparişi durumu
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft    PurchaseOrderStatus = "DRAFT"    // taslak, mal kabul bekliyor
	PurchaseOrderStatusReceived PurchaseOrderStatus = "RECEIVED" // mal kabulü yapıldı
)

// PurchaseOrder - Tedarikçiye verilen satın alma siparişi
// Durum geçişi tek yönlüdür: DRAFT -> RECEIVED
type PurchaseOrder struct {
	ID         string              `json:"id"`
	SupplierID string              `json:"supplier_id"`
	ProductID  string              `json:"product_id"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  float64             `json:"unit_price"`
	Date       time.Time           `json:"date"`
	Status     PurchaseOrderStatus `json:"status"`
}
