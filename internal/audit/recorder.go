package audit

import (
	"fmt"
	"time"

	"erp-backend/internal/fulfillment"
	"erp-backend/internal/models"
	"erp-backend/internal/store"
)

// Recorder - Motor olaylarını aktivite defterine yazar. Kayıt hatası kritik
// değildir; motor işlemi çoktan tamamlanmıştır.
type Recorder struct {
	store *store.Store
	now   func() time.Time
}

var _ fulfillment.EventDispatcher = (*Recorder)(nil)

func NewRecorder(st *store.Store, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{store: st, now: now}
}

func (r *Recorder) Dispatch(event fulfillment.Event) error {
	entry := models.AuditLog{Time: r.now()}

	switch e := event.(type) {
	case fulfillment.PurchaseOrderCreated:
		entry.EntityType = "purchase_order"
		entry.EntityID = e.PurchaseOrder.ID
		entry.Action = models.AuditActionCreate
		entry.Description = fmt.Sprintf("Satın alma siparişi oluşturuldu: %s (%d adet)", e.PurchaseOrder.ID, e.PurchaseOrder.Quantity)
	case fulfillment.PurchaseOrderReceived:
		entry.EntityType = "purchase_order"
		entry.EntityID = e.PurchaseOrder.ID
		entry.Action = models.AuditActionReceive
		entry.Description = fmt.Sprintf("Mal kabulü: %s - %.2f TL gider", e.PurchaseOrder.ID, e.Amount)
	case fulfillment.SalesOrderCreated:
		entry.EntityType = "order"
		entry.EntityID = e.Order.ID
		entry.Action = models.AuditActionCreate
		entry.Description = fmt.Sprintf("Satış siparişi oluşturuldu: %s - %.2f TL", e.Order.ID, e.Order.Total)
	case fulfillment.OrderShipped:
		entry.EntityType = "order"
		entry.EntityID = e.Order.ID
		entry.Action = models.AuditActionShip
		entry.Description = fmt.Sprintf("Sevkiyat: %s - fatura %s, kargo %s", e.Order.ID, e.Invoice.ID, e.Order.Logistics.Carrier)
	case fulfillment.OrderDelivered:
		entry.EntityType = "order"
		entry.EntityID = e.Order.ID
		entry.Action = models.AuditActionDeliver
		entry.Description = fmt.Sprintf("Teslim edildi: %s", e.Order.ID)
	default:
		// Bilinmeyen olaylar kaydedilmez
		return nil
	}

	r.store.AppendAuditLog(entry)
	return nil
}
