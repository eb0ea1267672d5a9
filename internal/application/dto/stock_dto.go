package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/stock/movements.
type RecordMovementRequest struct {
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason,omitempty"`
	RefID     string          `json:"ref_id,omitempty"`
	RefType   string          `json:"ref_type,omitempty"`
}

// MovementResponse una fila del libro de movimientos.
type MovementResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
	Reason        string          `json:"reason,omitempty"`
	RefID         string          `json:"ref_id,omitempty"`
	RefType       string          `json:"ref_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ListMovementsRequest query params de la consulta de auditoría.
type ListMovementsRequest struct {
	ProductID string     `query:"product_id"`
	Type      string     `query:"type"`
	From      *time.Time `query:"from"`
	To        *time.Time `query:"to"`
	Limit     int        `query:"limit"`
}
