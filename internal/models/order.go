package models

import "time"

// OrderStatus - Satış siparişi durumu
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // sevkiyat bekliyor
	OrderStatusShipped   OrderStatus = "SHIPPED"   // kargoya verildi
	OrderStatusDelivered OrderStatus = "DELIVERED" // teslim edildi (dış kaynaklı bildirim)
)

// Logistics - Sevk edilen siparişe iliştirilen kargo bilgisi
type Logistics struct {
	Carrier    string    `json:"carrier"`
	TrackingNo string    `json:"tracking_no"`
	ShippedAt  time.Time `json:"shipped_at"`
}

// Order - Müşteriye verilen satış siparişi
// Durum geçişi tek yönlüdür: PENDING -> SHIPPED -> DELIVERED
// Logistics yalnızca SHIPPED ve sonrasında doludur.
// Total, sipariş oluşturulurken ürün fiyatından kopyalanır; sonraki fiyat
// değişiklikleri mevcut siparişleri etkilemez.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	ProductID  string      `json:"product_id"`
	Quantity   int         `json:"quantity"`
	Date       time.Time   `json:"date"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
	Logistics  *Logistics  `json:"logistics,omitempty"`
}
