package catalog

import (
	"erp-backend/internal/ai"
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// POST /api/products
func CreateProductHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name == "" || body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name ve category zorunlu")
		}
		if body.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity negatif olamaz")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price negatif olamaz")
		}

		product := st.AddProduct(models.Product{
			Name:        body.Name,
			Category:    body.Category,
			Quantity:    body.Quantity,
			Price:       body.Price,
			Description: body.Description,
		})

		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// GET /api/products
func ListProductsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.ListProducts())
	}
}

// PUT /api/products/:id
// Ürün ana verisini günceller. Fiyat değişikliği mevcut siparişlerin
// tutarını etkilemez; tutar sipariş oluşturulurken kopyalanmıştır.
func UpdateProductHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Quantity != nil && *body.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity negatif olamaz")
		}
		if body.Price != nil && *body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price negatif olamaz")
		}

		product, ok := st.UpdateProduct(c.Params("id"), func(p *models.Product) {
			if body.Name != nil {
				p.Name = *body.Name
			}
			if body.Category != nil {
				p.Category = *body.Category
			}
			if body.Quantity != nil {
				p.Quantity = *body.Quantity
			}
			if body.Price != nil {
				p.Price = *body.Price
			}
			if body.Description != nil {
				p.Description = *body.Description
			}
		})
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		return c.JSON(product)
	}
}

// POST /api/products/:id/generate-description
// AI'dan ürün açıklaması ister ve ürüne yazar. Üretim en-iyi-çaba
// esaslıdır; servis ulaşılamazsa sabit metin kaydedilir.
func GenerateDescriptionHandler(st *store.Store, gen ai.Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		product, ok := st.FindProduct(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		description := gen.GenerateDescription(c.Context(), product.Name, product.Category)

		updated, ok := st.UpdateProduct(product.ID, func(p *models.Product) {
			p.Description = description
		})
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		return c.JSON(updated)
	}
}
