package models

// Customer - Müşteri ana verisi
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"` // irtibat kişisi
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
