package models

// Product - Katalogdaki satılabilir ürün
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"` // stok miktarı, hiçbir zaman negatif olamaz
	Price       float64 `json:"price"`    // güncel birim satış fiyatı
	Description string  `json:"description"`
}
