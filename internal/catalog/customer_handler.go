package catalog

import (
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// POST /api/customers
func CreateCustomerHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
		}

		customer := st.AddCustomer(models.Customer{
			Name:    body.Name,
			Contact: body.Contact,
			Phone:   body.Phone,
			Email:   body.Email,
			Address: body.Address,
		})

		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

// GET /api/customers
func ListCustomersHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.ListCustomers())
	}
}
