package insights

import (
	"fmt"
	"sort"
	"strings"

	"erp-backend/internal/ai"
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type InsightResponse struct {
	Context string `json:"context"`
	Insight string `json:"insight"`
}

// POST /api/insights
// Sistemin o anki durumundan küçük bir düz metin özeti derler ve AI
// danışmanından analiz ister. Üretim en-iyi-çaba esaslıdır.
func GenerateInsightsHandler(st *store.Store, gen ai.Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary := BuildContextSummary(st)
		insight := gen.GenerateInsights(c.Context(), summary)

		return c.JSON(InsightResponse{
			Context: summary,
			Insight: insight,
		})
	}
}

// BuildContextSummary - AI danışmanına gönderilen veri özeti: stok
// seviyeleri, sipariş sayıları ve işlem toplamı.
func BuildContextSummary(st *store.Store) string {
	var (
		products     []models.Product
		orderCount   int
		pendingCount int
		totalAmount  float64
	)

	st.View(func(d *store.Data) {
		for _, p := range d.Products {
			products = append(products, *p)
		}
		for _, o := range d.Orders {
			orderCount++
			if o.Status == models.OrderStatusPending {
				pendingCount++
			}
		}
		for _, t := range d.Transactions {
			totalAmount += t.Amount
		}
	})

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	stockLines := make([]string, 0, len(products))
	for _, p := range products {
		stockLines = append(stockLines, fmt.Sprintf("%s(%d)", p.Name, p.Quantity))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mevcut stok kalemleri: %s\n", strings.Join(stockLines, ", "))
	fmt.Fprintf(&b, "Toplam sipariş sayısı: %d\n", orderCount)
	fmt.Fprintf(&b, "İşlem hacmi toplamı: %.2f TL\n", totalAmount)
	fmt.Fprintf(&b, "Bekleyen sipariş: %d\n", pendingCount)
	return b.String()
}
