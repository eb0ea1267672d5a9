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

var _ repository.PackagingTaskRepository = (*PackagingTaskRepo)(nil)

// PackagingTaskRepo implementación sobre PostgreSQL (usable con pool o tx).
type PackagingTaskRepo struct {
	q Querier
}

// NewPackagingTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackagingTaskRepository(q Querier) *PackagingTaskRepo {
	return &PackagingTaskRepo{q: q}
}

// Upsert inserta la tarea o actualiza la existente para la misma orden de
// producción. El índice único sobre production_run_id hace el upsert seguro
// ante invocaciones concurrentes; en el update la cantidad empacada se
// conserva y el estado vuelve a pending.
func (r *PackagingTaskRepo) Upsert(t *entity.PackagingTask) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO packaging_tasks (id, company_id, production_run_id, product_id, product_name, qty_to_package, qty_packaged, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (production_run_id)
		DO UPDATE SET qty_to_package = EXCLUDED.qty_to_package,
		              product_name = EXCLUDED.product_name,
		              status = EXCLUDED.status,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.CompanyID, t.ProductionRunID, t.ProductID, t.ProductName,
		t.QtyToPackage, t.QtyPackaged, t.Status, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert packaging task: %w", err)
	}
	return nil
}

// GetByRunID obtiene la tarea de una orden de producción. nil, nil si no existe.
func (r *PackagingTaskRepo) GetByRunID(productionRunID string) (*entity.PackagingTask, error) {
	query := `
		SELECT id, company_id, production_run_id, product_id, product_name, qty_to_package, qty_packaged, status, created_at, updated_at
		FROM packaging_tasks WHERE production_run_id = $1`
	var t entity.PackagingTask
	err := r.q.QueryRow(context.Background(), query, productionRunID).Scan(
		&t.ID, &t.CompanyID, &t.ProductionRunID, &t.ProductID, &t.ProductName,
		&t.QtyToPackage, &t.QtyPackaged, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get packaging task: %w", err)
	}
	return &t, nil
}
