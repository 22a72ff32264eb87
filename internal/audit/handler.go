package audit

import (
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	EntityType  string `json:"entity_type"`
	EntityID    string `json:"entity_id"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

// GET /api/audit-logs
func ListAuditLogsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logs := st.ListAuditLogs()

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, toResponse(l))
		}
		return c.JSON(resp)
	}
}

func toResponse(l models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:          l.ID,
		Time:        l.Time.Format("2006-01-02 15:04:05"),
		EntityType:  l.EntityType,
		EntityID:    l.EntityID,
		Action:      string(l.Action),
		Description: l.Description,
	}
}
