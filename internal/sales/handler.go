package sales

import (
	"errors"

	"erp-backend/internal/fulfillment"
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
}

type ShipOrderRequest struct {
	Carrier    string `json:"carrier"`
	TrackingNo string `json:"tracking_no"`
}

type LogisticsResponse struct {
	Carrier    string `json:"carrier"`
	TrackingNo string `json:"tracking_no"`
	ShippedAt  string `json:"shipped_at"`
}

type OrderResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	ProductID  string             `json:"product_id"`
	Quantity   int                `json:"quantity"`
	Date       string             `json:"date"`
	Total      float64            `json:"total"`
	Status     string             `json:"status"`
	Logistics  *LogisticsResponse `json:"logistics,omitempty"`
}

// POST /api/orders
func CreateOrderHandler(svc fulfillment.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		order, err := svc.CreateSalesOrder(fulfillment.CreateSalesOrderInput{
			CustomerID: body.CustomerID,
			ProductID:  body.ProductID,
			Quantity:   body.Quantity,
		})
		if err != nil {
			return mapEngineError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(*order))
	}
}

// GET /api/orders?status=PENDING
func ListOrdersHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := models.OrderStatus(c.Query("status"))
		switch status {
		case "", models.OrderStatusPending, models.OrderStatusShipped, models.OrderStatusDelivered:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz status (PENDING|SHIPPED|DELIVERED)")
		}

		orders := st.ListOrders(status)
		resp := make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, toResponse(o))
		}
		return c.JSON(resp)
	}
}

// POST /api/orders/:id/ship
// Sevkiyat: stok düşümü, kargo bilgisi, fatura ve gelir kaydı tek birim
// olarak işlenir. Stok yetersizse mevcut/gereken miktarlarla 409 döner.
func ShipOrderHandler(svc fulfillment.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ShipOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Carrier == "" || body.TrackingNo == "" {
			return fiber.NewError(fiber.StatusBadRequest, "carrier ve tracking_no zorunlu")
		}

		if err := svc.ShipOrder(c.Params("id"), body.Carrier, body.TrackingNo); err != nil {
			return mapEngineError(c, err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// POST /api/orders/:id/deliver
// Teslimat bildirimi dış kaynaklıdır (kargo firması geri bildirimi).
func DeliverOrderHandler(svc fulfillment.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.MarkOrderDelivered(c.Params("id")); err != nil {
			return mapEngineError(c, err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func mapEngineError(c *fiber.Ctx, err error) error {
	var stockErr *fulfillment.InsufficientStockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     stockErr.Error(),
			"available": stockErr.Available,
			"required":  stockErr.Required,
		})
	}

	switch {
	case errors.Is(err, fulfillment.ErrOrderNotFound),
		errors.Is(err, fulfillment.ErrCustomerNotFound),
		errors.Is(err, fulfillment.ErrProductNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, fulfillment.ErrInvalidStateTransition):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, fulfillment.ErrInvalidQuantity):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}

func toResponse(o models.Order) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		Date:       o.Date.Format("2006-01-02"),
		Total:      o.Total,
		Status:     string(o.Status),
	}
	if o.Logistics != nil {
		resp.Logistics = &LogisticsResponse{
			Carrier:    o.Logistics.Carrier,
			TrackingNo: o.Logistics.TrackingNo,
			ShippedAt:  o.Logistics.ShippedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return resp
}
