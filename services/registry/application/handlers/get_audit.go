package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/errhttp"
	"github.com/ghuser/assetforge/pkg/httpx"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
)

// auditTrailLimit caps how many rows one request returns.
const auditTrailLimit = 100

// AuditEventResponse is one recorded domain event of an item's history.
type AuditEventResponse struct {
	EventID    uuid.UUID       `json:"event_id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Topic      string          `json:"topic"       example:"registry.item.issued"`
	Payload    json.RawMessage `json:"payload"     swaggertype:"object"`
	OccurredAt time.Time       `json:"occurred_at" example:"2026-01-15T10:30:00Z"`
	RecordedAt time.Time       `json:"recorded_at" example:"2026-01-15T10:30:01Z"`
} // @name AuditEventResponse

// AuditTrailResponse lists an item's recorded events, newest first.
type AuditTrailResponse struct {
	Events []AuditEventResponse `json:"events"`
} // @name AuditTrailResponse

// GetAuditHandler handles GET /items/{id}/audit.
type GetAuditHandler struct {
	svc *appsvcs.Services
}

// NewGetAuditHandler returns a GetAuditHandler backed by the given services.
func NewGetAuditHandler(svc *appsvcs.Services) *GetAuditHandler {
	return &GetAuditHandler{svc: svc}
}

// Execute returns the persisted audit trail of one item.
//
//	@Summary		Get item audit trail
//	@Description	Returns the recorded domain events referencing an item, newest first
//	@Tags			registry
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	AuditTrailResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/items/{id}/audit [get]
func (h *GetAuditHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.PrincipalFromCtx(r.Context()); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a uuid")
		return
	}

	if h.svc.Audit == nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "audit trail unavailable")
		return
	}

	rows, err := h.svc.Audit.FindByItem(r.Context(), id, auditTrailLimit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := AuditTrailResponse{Events: make([]AuditEventResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Events = append(resp.Events, AuditEventResponse{
			EventID:    row.EventID,
			Topic:      row.Topic,
			Payload:    row.Payload,
			OccurredAt: row.OccurredAt,
			RecordedAt: row.RecordedAt,
		})
	}
	httpx.JSON(w, http.StatusOK, resp)
}
