package dto

import "github.com/shopspring/decimal"

// FinishProductionRequest body para POST /api/production/runs/:id/finish.
// Outcome: completed | approved | rejected.
type FinishProductionRequest struct {
	ProducedQty decimal.Decimal `json:"produced_qty"`
	Outcome     string          `json:"outcome"`
}
