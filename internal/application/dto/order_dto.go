package dto

// CancelOrderRequest body para POST /api/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelOrderResponse resultado de una cancelación exitosa.
type CancelOrderResponse struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	StockUpdatesCount   int    `json:"stock_updates_count"`
	StockMovementsCount int    `json:"stock_movements_count"`
}
