package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// WorkflowUseCase gestiona la máquina de estados de las órdenes de
// producción: pending → in_progress → {completed | approved | rejected}.
// Solo approved dispara empaque; al aprobar, los bienes producidos entran a
// stock con un movimiento production_output en la misma transacción.
type WorkflowUseCase struct {
	txRunner TxRunner
	ledger   Ledger
}

// NewWorkflowUseCase construye el caso de uso.
func NewWorkflowUseCase(txRunner TxRunner, ledger Ledger) *WorkflowUseCase {
	return &WorkflowUseCase{txRunner: txRunner, ledger: ledger}
}

// Start transición pending → in_progress, registrando la marca de inicio.
func (uc *WorkflowUseCase) Start(ctx context.Context, companyID, runID string) error {
	return uc.txRunner.RunProduction(ctx, func(
		runRepo repository.ProductionRunRepository,
		_ repository.PackagingTaskRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		run, err := uc.getRun(runRepo, companyID, runID)
		if err != nil {
			return err
		}
		if run.Status != entity.ProductionStatusPending {
			return fmt.Errorf("%w: start requiere estado pending, orden %s está en %s",
				domain.ErrInvalidTransition, run.ID, run.Status)
		}
		now := time.Now()
		run.Status = entity.ProductionStatusInProgress
		run.StartedAt = &now
		run.UpdatedAt = now
		return runRepo.Update(run)
	})
}

// Finish cierra una orden en producción con el resultado indicado.
// Para completed y approved persiste la cantidad producida; para approved
// además, en la misma transacción: metadatos de aprobación, upsert de la
// tarea de empaque y entrada de la producción a stock. Una segunda llamada
// con el mismo runID y outcome approved no duplica nada: detecta la orden ya
// aprobada, re-upserta la tarea existente y termina sin error.
func (uc *WorkflowUseCase) Finish(ctx context.Context, companyID, userID, runID string, producedQty decimal.Decimal, outcome string) error {
	switch outcome {
	case entity.ProductionStatusCompleted, entity.ProductionStatusApproved, entity.ProductionStatusRejected:
	default:
		return fmt.Errorf("%w: resultado %q", domain.ErrInvalidInput, outcome)
	}

	return uc.txRunner.RunProduction(ctx, func(
		runRepo repository.ProductionRunRepository,
		taskRepo repository.PackagingTaskRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		run, err := uc.getRun(runRepo, companyID, runID)
		if err != nil {
			return err
		}

		// Reintento idempotente de una aprobación ya confirmada: converge
		// re-upsertando la tarea con la cantidad ya registrada, sin segundo
		// movimiento de stock.
		if run.Status == entity.ProductionStatusApproved && outcome == entity.ProductionStatusApproved {
			return uc.upsertTask(taskRepo, productRepo, run, *run.ProducedQty, time.Now())
		}
		if run.IsTerminal() {
			return fmt.Errorf("%w: la orden %s ya está en estado final %s",
				domain.ErrInvalidTransition, run.ID, run.Status)
		}
		if run.Status != entity.ProductionStatusInProgress {
			return fmt.Errorf("%w: finish requiere estado in_progress, orden %s está en %s",
				domain.ErrInvalidTransition, run.ID, run.Status)
		}

		now := time.Now()
		if outcome != entity.ProductionStatusRejected {
			if !producedQty.GreaterThan(decimal.Zero) {
				return fmt.Errorf("%w: la cantidad producida debe ser mayor que cero", domain.ErrInvalidQuantity)
			}
			run.ProducedQty = &producedQty
		}
		run.Status = outcome
		run.CompletedAt = &now
		run.UpdatedAt = now
		if outcome == entity.ProductionStatusApproved {
			run.ApprovedBy = userID
		}
		if err := runRepo.Update(run); err != nil {
			return err
		}
		if outcome != entity.ProductionStatusApproved {
			return nil
		}

		// Los bienes producidos entran a stock junto con la aprobación.
		_, err = uc.ledger.RecordMovementInTx(movRepo, productRepo, companyID, userID, stock.MovementInput{
			ProductID: run.ProductID,
			Type:      entity.MovementTypeProductionOutput,
			Quantity:  producedQty,
			Reason:    fmt.Sprintf("producción aprobada, orden %s", run.ID),
			RefID:     run.ID,
			RefType:   entity.MovementRefProductionRun,
		}, now)
		if err != nil {
			return err
		}
		return uc.upsertTask(taskRepo, productRepo, run, producedQty, now)
	})
}

// upsertTask crea o actualiza la tarea de empaque de la orden. El índice
// único sobre production_run_id garantiza una sola tarea por orden aun con
// aprobaciones concurrentes; una re-aprobación corrige la cantidad y vuelve
// la tarea a pending.
func (uc *WorkflowUseCase) upsertTask(
	taskRepo repository.PackagingTaskRepository,
	productRepo repository.ProductRepository,
	run *entity.ProductionRun,
	qty decimal.Decimal,
	now time.Time,
) error {
	product, err := productRepo.GetByID(run.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, run.ProductID)
	}
	return taskRepo.Upsert(&entity.PackagingTask{
		ID:              uuid.New().String(),
		CompanyID:       run.CompanyID,
		ProductionRunID: run.ID,
		ProductID:       run.ProductID,
		ProductName:     product.Name,
		QtyToPackage:    qty,
		QtyPackaged:     decimal.Zero,
		Status:          entity.PackagingStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func (uc *WorkflowUseCase) getRun(runRepo repository.ProductionRunRepository, companyID, runID string) (*entity.ProductionRun, error) {
	run, err := runRepo.GetForUpdate(runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("%w: orden de producción %s", domain.ErrNotFound, runID)
	}
	if run.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return run, nil
}
