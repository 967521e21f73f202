package handlers

import (
	"time"

	"github.com/google/uuid"

	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
	"github.com/ghuser/assetforge/services/registry/domain/models"
)

// ItemResponse is the wire form of one enumerated holding.
type ItemResponse struct {
	ID         uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Issuer     uuid.UUID `json:"issuer"      example:"550e8400-e29b-41d4-a716-446655440000"`
	Name       string    `json:"name"        example:"gold"`
	Value      uint64    `json:"value"       example:"100"`
	Unit       string    `json:"unit"        example:"oz"`
	Qty        uint64    `json:"qty"         example:"10"`
	Validity   time.Time `json:"validity"    example:"2026-01-15T10:30:00Z"`
	Resale     bool      `json:"resale"      example:"true"`
	ForSale    bool      `json:"for_sale"    example:"false"`
	DenseIndex int       `json:"dense_index" example:"0"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item, forSale bool) ItemResponse {
	return ItemResponse{
		ID:         item.ID,
		Issuer:     item.Issuer,
		Name:       item.Name.String(),
		Value:      item.Value,
		Unit:       item.Unit,
		Qty:        item.Qty,
		Validity:   item.Validity,
		Resale:     item.Resale,
		ForSale:    forSale,
		DenseIndex: item.DenseIndex,
	}
}

func toItemResponses(holdings []*appsvcs.HoldingAt) []ItemResponse {
	out := make([]ItemResponse, len(holdings))
	for i, h := range holdings {
		out[i] = toItemResponse(h.Item, h.ForSale)
	}
	return out
}
