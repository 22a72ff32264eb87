package dashboard

import (
	"sort"

	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type StockLevel struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type SummaryResponse struct {
	TotalRevenue   float64      `json:"total_revenue"`   // INCOME işlemlerin toplamı
	TotalExpense   float64      `json:"total_expense"`   // EXPENSE işlemlerin toplamı
	InventoryValue float64      `json:"inventory_value"` // Σ miktar × güncel fiyat
	PendingOrders  int          `json:"pending_orders"`
	StockLevels    []StockLevel `json:"stock_levels"`
}

// GET /api/dashboard/summary
// Tek görünümde tutarlı bir özet için tüm toplamlar aynı kilit altında
// hesaplanır.
func SummaryHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var resp SummaryResponse

		st.View(func(d *store.Data) {
			for _, t := range d.Transactions {
				switch t.Type {
				case models.TransactionTypeIncome:
					resp.TotalRevenue += t.Amount
				case models.TransactionTypeExpense:
					resp.TotalExpense += t.Amount
				}
			}

			for _, p := range d.Products {
				resp.InventoryValue += float64(p.Quantity) * p.Price
				resp.StockLevels = append(resp.StockLevels, StockLevel{
					ProductID:   p.ID,
					ProductName: p.Name,
					Quantity:    p.Quantity,
				})
			}

			for _, o := range d.Orders {
				if o.Status == models.OrderStatusPending {
					resp.PendingOrders++
				}
			}
		})

		sort.Slice(resp.StockLevels, func(i, j int) bool {
			return resp.StockLevels[i].ProductID < resp.StockLevels[j].ProductID
		})
		return c.JSON(resp)
	}
}
