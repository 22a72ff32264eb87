package catalog

import (
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateWarehouseLocationRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Manager  string `json:"manager"`
	Type     string `json:"type"` // MAIN | COLD | BUFFER
}

// POST /api/warehouse-locations
func CreateWarehouseLocationHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateWarehouseLocationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
		}

		whType := models.WarehouseType(body.Type)
		switch whType {
		case models.WarehouseTypeMain, models.WarehouseTypeCold, models.WarehouseTypeBuffer:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz type (MAIN|COLD|BUFFER)")
		}

		location := st.AddWarehouseLocation(models.WarehouseLocation{
			Name:     body.Name,
			Location: body.Location,
			Manager:  body.Manager,
			Type:     whType,
		})

		return c.Status(fiber.StatusCreated).JSON(location)
	}
}

// GET /api/warehouse-locations
func ListWarehouseLocationsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.ListWarehouseLocations())
	}
}
