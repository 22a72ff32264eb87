package finance

import (
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type InvoiceResponse struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Tax          float64 `json:"tax"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// GET /api/invoices
func ListInvoicesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invoices := st.ListInvoices()

		resp := make([]InvoiceResponse, 0, len(invoices))
		for _, inv := range invoices {
			resp = append(resp, InvoiceResponse{
				ID:           inv.ID,
				OrderID:      inv.OrderID,
				CustomerName: inv.CustomerName,
				Amount:       inv.Amount,
				Date:         inv.Date.Format("2006-01-02"),
				Tax:          inv.Tax,
			})
		}
		return c.JSON(resp)
	}
}

// GET /api/transactions?type=INCOME
func ListTransactionsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		typ := models.TransactionType(c.Query("type"))
		switch typ {
		case "", models.TransactionTypeIncome, models.TransactionTypeExpense:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz type (INCOME|EXPENSE)")
		}

		txs := st.ListTransactions(typ)
		resp := make([]TransactionResponse, 0, len(txs))
		for _, t := range txs {
			resp = append(resp, TransactionResponse{
				ID:          t.ID,
				Date:        t.Date.Format("2006-01-02"),
				Type:        string(t.Type),
				Category:    t.Category,
				Amount:      t.Amount,
				Description: t.Description,
			})
		}
		return c.JSON(resp)
	}
}
