package models

import "time"

// TransactionType - Nakit akışı yönü
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"  // gelir
	TransactionTypeExpense TransactionType = "EXPENSE" // gider
)

// Finansal işlem kategorileri
const (
	CategoryProcurementReceipt = "procurement-receipt" // mal kabulü gideri
	CategorySalesShipment      = "sales-shipment"      // sevkiyat geliri
)

// Transaction - Finansal deftere yazılan işlem kaydı (yalnızca eklenir, silinmez)
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
}
