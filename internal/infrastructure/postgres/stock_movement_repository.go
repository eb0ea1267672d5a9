package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, company_id, product_id, type, quantity, previous_stock, new_stock, reason, ref_id, ref_type, created_at, created_by`

// Create agrega una fila al libro de movimientos.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	refID := (*string)(nil)
	refType := (*string)(nil)
	if m.RefID != "" {
		refID = &m.RefID
		refType = &m.RefType
	}
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CompanyID, m.ProductID, m.Type, m.Quantity,
		m.PreviousStock, m.NewStock, m.Reason, refID, refType,
		m.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// List movimientos de la empresa en orden cronológico inverso, con filtros
// opcionales por producto, tipo y rango de fechas.
func (r *StockMovementRepo) List(companyID string, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", pos)
	args = append(args, filter.Limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return r.scanAll(rows)
}

// ListByRef movimientos originados por una entidad de negocio, en orden de creación.
func (r *StockMovementRepo) ListByRef(companyID, refType, refID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		WHERE company_id = $1 AND ref_type = $2 AND ref_id = $3
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, companyID, refType, refID)
	if err != nil {
		return nil, fmt.Errorf("list movements by ref: %w", err)
	}
	return r.scanAll(rows)
}

func (r *StockMovementRepo) scanAll(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var refID, refType, createdBy *string
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ProductID, &m.Type, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.Reason, &refID, &refType,
			&m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if refID != nil {
			m.RefID = *refID
		}
		if refType != nil {
			m.RefType = *refType
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
