package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso los
// envuelven con fmt.Errorf("%w: ...") para añadir ids y cantidades; el
// handler HTTP decide el status con errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrOrderNotFound     = errors.New("pedido no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrAlreadyCancelled  = errors.New("el pedido ya está cancelado")
	ErrNotCancellable    = errors.New("el pedido no se puede cancelar en su estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
