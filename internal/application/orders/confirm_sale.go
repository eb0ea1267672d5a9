package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// ConfirmSaleUseCase confirma la venta de un pedido listo: descuenta del
// stock cada línea (movimientos sale_deduction) y avanza el pedido a sold.
// Estos son los descuentos que una cancelación posterior compensa.
type ConfirmSaleUseCase struct {
	txRunner TxRunner
	ledger   Ledger
}

// NewConfirmSaleUseCase construye el caso de uso.
func NewConfirmSaleUseCase(txRunner TxRunner, ledger Ledger) *ConfirmSaleUseCase {
	return &ConfirmSaleUseCase{txRunner: txRunner, ledger: ledger}
}

// ConfirmSale descuenta el stock de todas las líneas y marca el pedido como
// vendido, todo en una transacción: si alguna línea no tiene stock
// suficiente, ninguna queda descontada.
func (uc *ConfirmSaleUseCase) ConfirmSale(ctx context.Context, companyID, userID, orderID string) error {
	return uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
		}
		if order.CompanyID != companyID {
			return domain.ErrForbidden
		}
		if order.Status != entity.OrderStatusReadyForSale {
			return fmt.Errorf("%w: confirmar venta requiere estado ready_for_sale, pedido %s está en %s",
				domain.ErrInvalidTransition, order.Number, order.Status)
		}

		now := time.Now()
		for _, item := range order.Items {
			_, err := uc.ledger.RecordMovementInTx(movRepo, productRepo, companyID, userID, stock.MovementInput{
				ProductID: item.ProductID,
				Type:      entity.MovementTypeSaleDeduction,
				Quantity:  item.Quantity,
				Reason:    fmt.Sprintf("venta confirmada, pedido %s", order.Number),
				RefID:     order.ID,
				RefType:   entity.MovementRefOrder,
			}, now)
			if err != nil {
				return err
			}
		}
		return orderRepo.UpdateStatus(order.ID, entity.OrderStatusSold, order.Notes, now)
	})
}
