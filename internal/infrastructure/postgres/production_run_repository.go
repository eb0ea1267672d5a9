package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.ProductionRunRepository = (*ProductionRunRepo)(nil)

// ProductionRunRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProductionRunRepo struct {
	q Querier
}

// NewProductionRunRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRunRepository(q Querier) *ProductionRunRepo {
	return &ProductionRunRepo{q: q}
}

const runColumns = `id, company_id, order_item_id, product_id, requested_qty, produced_qty, status, started_at, completed_at, approved_by, created_at, updated_at`

// Create persiste una orden de producción nueva (estado pending).
func (r *ProductionRunRepo) Create(run *entity.ProductionRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	query := `
		INSERT INTO production_runs (id, company_id, order_item_id, product_id, requested_qty, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		run.ID, run.CompanyID, run.OrderItemID, run.ProductID, run.RequestedQty, run.Status)
	if err != nil {
		return fmt.Errorf("create production run: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil, nil si no existe.
func (r *ProductionRunRepo) GetByID(id string) (*entity.ProductionRun, error) {
	query := `SELECT ` + runColumns + ` FROM production_runs WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductionRunRepo) GetForUpdate(id string) (*entity.ProductionRun, error) {
	query := `SELECT ` + runColumns + ` FROM production_runs WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste el estado completo de la orden tras una transición.
func (r *ProductionRunRepo) Update(run *entity.ProductionRun) error {
	query := `
		UPDATE production_runs
		SET produced_qty = $2, status = $3, started_at = $4, completed_at = $5, approved_by = $6, updated_at = $7
		WHERE id = $1`
	approvedBy := (*string)(nil)
	if run.ApprovedBy != "" {
		approvedBy = &run.ApprovedBy
	}
	tag, err := r.q.Exec(context.Background(), query,
		run.ID, run.ProducedQty, run.Status, run.StartedAt, run.CompletedAt, approvedBy, run.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update production run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update production run: fila no encontrada %s", run.ID)
	}
	return nil
}

func (r *ProductionRunRepo) scanOne(row pgx.Row) (*entity.ProductionRun, error) {
	var run entity.ProductionRun
	var approvedBy *string
	err := row.Scan(&run.ID, &run.CompanyID, &run.OrderItemID, &run.ProductID,
		&run.RequestedQty, &run.ProducedQty, &run.Status,
		&run.StartedAt, &run.CompletedAt, &approvedBy, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production run: %w", err)
	}
	if approvedBy != nil {
		run.ApprovedBy = *approvedBy
	}
	return &run, nil
}
