package models

import "time"

// Invoice - Sevk edilen siparişten türetilen fatura kaydı
// CustomerName, fatura kesildiği andaki müşteri adının kopyasıdır (denetim
// kaydı); müşteri kaydına canlı bir referans değildir.
type Invoice struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Tax          float64   `json:"tax"`
}
