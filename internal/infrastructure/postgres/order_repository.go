package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, company_id, number, client_name, delivery_address, status, notes, created_at, updated_at`

// Create persiste el pedido con sus líneas.
func (r *OrderRepo) Create(o *entity.Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (id, company_id, number, client_name, delivery_address, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CompanyID, o.Number, o.ClientName, o.DeliveryAddress, o.Status, o.Notes)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de pedido %s", domain.ErrInvalidInput, o.Number)
		}
		return fmt.Errorf("create order: %w", err)
	}
	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	for i := range o.Items {
		item := &o.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = o.ID
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.OrderID, item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el pedido con sus líneas. Devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate obtiene el pedido con sus líneas bloqueando la cabecera
// (SELECT FOR UPDATE) para serializar cancelaciones concurrentes.
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// UpdateStatus cambia el estado del pedido y reemplaza la bitácora de notas.
func (r *OrderRepo) UpdateStatus(id, status, notes string, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $2, notes = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status, notes, updatedAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrOrderNotFound, id)
	}
	return nil
}

func (r *OrderRepo) getOne(query, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.Number, &o.ClientName, &o.DeliveryAddress,
		&o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.listItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) listItems(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
