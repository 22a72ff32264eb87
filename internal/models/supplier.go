package models

// Supplier - Tedarikçi ana verisi
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"` // irtibat kişisi
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
