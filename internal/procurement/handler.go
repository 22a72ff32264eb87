package procurement

import (
	"errors"

	"erp-backend/internal/fulfillment"
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreatePurchaseOrderRequest struct {
	SupplierID string  `json:"supplier_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type PurchaseOrderResponse struct {
	ID         string  `json:"id"`
	SupplierID string  `json:"supplier_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
}

// POST /api/purchase-orders
func CreatePurchaseOrderHandler(svc fulfillment.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		po, err := svc.CreatePurchaseOrder(fulfillment.CreatePurchaseOrderInput{
			SupplierID: body.SupplierID,
			ProductID:  body.ProductID,
			Quantity:   body.Quantity,
			UnitPrice:  body.UnitPrice,
		})
		if err != nil {
			return mapEngineError(err)
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(*po))
	}
}

// GET /api/purchase-orders?status=DRAFT
func ListPurchaseOrdersHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := models.PurchaseOrderStatus(c.Query("status"))
		switch status {
		case "", models.PurchaseOrderStatusDraft, models.PurchaseOrderStatusReceived:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz status (DRAFT|RECEIVED)")
		}

		pos := st.ListPurchaseOrders(status)
		resp := make([]PurchaseOrderResponse, 0, len(pos))
		for _, po := range pos {
			resp = append(resp, toResponse(po))
		}
		return c.JSON(resp)
	}
}

// POST /api/purchase-orders/:id/receive
// Mal kabulü: stok artışı, durum geçişi ve gider kaydı tek birim olarak
// işlenir.
func ReceivePurchaseOrderHandler(svc fulfillment.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.ReceivePurchaseOrder(c.Params("id")); err != nil {
			return mapEngineError(err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, fulfillment.ErrPurchaseOrderNotFound),
		errors.Is(err, fulfillment.ErrSupplierNotFound),
		errors.Is(err, fulfillment.ErrProductNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, fulfillment.ErrInvalidStateTransition):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, fulfillment.ErrInvalidQuantity),
		errors.Is(err, fulfillment.ErrInvalidUnitPrice):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}

func toResponse(po models.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:         po.ID,
		SupplierID: po.SupplierID,
		ProductID:  po.ProductID,
		Quantity:   po.Quantity,
		UnitPrice:  po.UnitPrice,
		Date:       po.Date.Format("2006-01-02"),
		Status:     string(po.Status),
	}
}
