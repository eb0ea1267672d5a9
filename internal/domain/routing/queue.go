package routing

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// StopQueue es una cola FIFO explícita de paradas pendientes de una región.
// Hace evidente (y testeable) la lógica de "sacar las primeras N paradas"
// del asignador, en lugar de mutar slices compartidos.
type StopQueue struct {
	items []entity.RouteStop
}

// NewStopQueue construye la cola con las paradas en orden de llegada.
func NewStopQueue(stops []entity.RouteStop) *StopQueue {
	q := &StopQueue{items: make([]entity.RouteStop, len(stops))}
	copy(q.items, stops)
	return q
}

// Enqueue agrega una parada al final.
func (q *StopQueue) Enqueue(stop entity.RouteStop) {
	q.items = append(q.items, stop)
}

// DequeueUpTo saca hasta n paradas del frente, en orden FIFO.
func (q *StopQueue) DequeueUpTo(n int) []entity.RouteStop {
	if n <= 0 || len(q.items) == 0 {
		return nil
	}
	if n > len(q.items) {
		n = len(q.items)
	}
	out := q.items[:n]
	q.items = q.items[n:]
	return out
}

// DrainAll vacía la cola devolviendo todas las paradas restantes.
func (q *StopQueue) DrainAll() []entity.RouteStop {
	return q.DequeueUpTo(len(q.items))
}

// Len paradas pendientes.
func (q *StopQueue) Len() int { return len(q.items) }
