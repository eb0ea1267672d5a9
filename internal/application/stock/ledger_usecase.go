package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// Límites de la consulta de auditoría.
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// LedgerUseCase es el libro de movimientos de stock: el único punto del
// sistema que modifica Product.Stock. Cada cambio se aplica y se registra en
// la misma transacción, con la fila del producto bloqueada (SELECT FOR
// UPDATE) para que dos movimientos concurrentes sobre el mismo producto no se
// pisen la pareja previous_stock/new_stock.
type LedgerUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso. movementRepo se usa solo para
// consultas de auditoría (fuera de transacción).
func NewLedgerUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	Type      string
	Quantity  decimal.Decimal
	Reason    string
	RefID     string
	RefType   string
}

// RecordMovement valida la entrada y registra el movimiento en una
// transacción propia: bloquea el producto, calcula el delta con signo según
// el tipo, rechaza salidas que dejarían el stock negativo, escribe el nuevo
// stock y agrega la fila del libro con los snapshots de la misma lectura.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, companyID, userID string, input MovementInput) (*entity.StockMovement, error) {
	if entity.MovementSign(input.Type) == 0 {
		return nil, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, input.Type)
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidQuantity)
	}

	var movement *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		m, err := uc.RecordMovementInTx(movRepo, productRepo, companyID, userID, input, time.Now())
		if err != nil {
			return err
		}
		movement = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// RecordMovementInTx registra un movimiento usando los repositorios
// proporcionados (misma transacción del caller). Lo usan la aprobación de
// producción, la confirmación de venta y la cancelación de pedidos para que
// sus movimientos participen de su propia transacción.
func (uc *LedgerUseCase) RecordMovementInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	companyID, userID string,
	input MovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	sign := entity.MovementSign(input.Type)
	if sign == 0 {
		return nil, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, input.Type)
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidQuantity)
	}

	// Bloquea la fila del producto: sección crítica por producto.
	product, err := productRepo.GetForUpdate(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, input.ProductID)
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	previous := product.Stock
	var newStock decimal.Decimal
	if sign > 0 {
		newStock = previous.Add(input.Quantity)
	} else {
		newStock = previous.Sub(input.Quantity)
		if newStock.IsNegative() {
			shortfall := input.Quantity.Sub(previous)
			return nil, fmt.Errorf("%w: producto %s, faltan %s unidades",
				domain.ErrInsufficientStock, product.Name, shortfall.String())
		}
	}

	if err := productRepo.UpdateStock(product.ID, newStock, now); err != nil {
		return nil, err
	}
	movement := &entity.StockMovement{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		ProductID:     product.ID,
		Type:          input.Type,
		Quantity:      input.Quantity,
		PreviousStock: previous,
		NewStock:      newStock,
		Reason:        input.Reason,
		RefID:         input.RefID,
		RefType:       input.RefType,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	if err := movRepo.Create(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// ListMovements consulta de auditoría: filtra por producto, tipo y rango de
// fechas, en orden cronológico inverso, con tope de filas.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, companyID string, req dto.ListMovementsRequest) ([]*entity.StockMovement, error) {
	_ = ctx
	if req.Type != "" && entity.MovementSign(req.Type) == 0 {
		return nil, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, req.Type)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return uc.movementRepo.List(companyID, repository.MovementFilter{
		ProductID: req.ProductID,
		Type:      req.Type,
		From:      req.From,
		To:        req.To,
		Limit:     limit,
	})
}
