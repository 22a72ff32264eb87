package catalog

import (
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// POST /api/suppliers
func CreateSupplierHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
		}

		supplier := st.AddSupplier(models.Supplier{
			Name:    body.Name,
			Contact: body.Contact,
			Phone:   body.Phone,
			Email:   body.Email,
			Address: body.Address,
		})

		return c.Status(fiber.StatusCreated).JSON(supplier)
	}
}

// GET /api/suppliers
func ListSuppliersHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.ListSuppliers())
	}
}
