package models

import "time"

// AuditAction - Aktivite kaydındaki işlem türü
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionReceive AuditAction = "receive"
	AuditActionShip    AuditAction = "ship"
	AuditActionDeliver AuditAction = "deliver"
)

// AuditLog - Motorun ürettiği aktivite kaydı
type AuditLog struct {
	ID          string      `json:"id"`
	Time        time.Time   `json:"time"`
	EntityType  string      `json:"entity_type"` // "purchase_order" | "order"
	EntityID    string      `json:"entity_id"`
	Action      AuditAction `json:"action"`
	Description string      `json:"description"`
}
