package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/routing"
)

func stops(ids ...string) []entity.RouteStop {
	out := make([]entity.RouteStop, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.RouteStop{OrderID: id})
	}
	return out
}

func ids(in []entity.RouteStop) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, s.OrderID)
	}
	return out
}

func TestStopQueue_DequeueRespetaOrdenFIFO(t *testing.T) {
	q := routing.NewStopQueue(stops("a", "b", "c", "d"))

	first := q.DequeueUpTo(2)
	require.Equal(t, []string{"a", "b"}, ids(first), "debe sacar las primeras paradas en orden de llegada")
	assert.Equal(t, 2, q.Len())

	rest := q.DequeueUpTo(10)
	assert.Equal(t, []string{"c", "d"}, ids(rest), "pedir más de lo que hay devuelve el resto")
	assert.Equal(t, 0, q.Len())
}

func TestStopQueue_DequeueDeVacia(t *testing.T) {
	q := routing.NewStopQueue(nil)

	assert.Nil(t, q.DequeueUpTo(3))
	assert.Equal(t, 0, q.Len())
}

func TestStopQueue_DequeueCero(t *testing.T) {
	q := routing.NewStopQueue(stops("a"))

	assert.Nil(t, q.DequeueUpTo(0))
	assert.Equal(t, 1, q.Len(), "pedir cero paradas no debe consumir la cola")
}

func TestStopQueue_EnqueueYDrain(t *testing.T) {
	q := routing.NewStopQueue(stops("a"))
	q.Enqueue(entity.RouteStop{OrderID: "b"})

	assert.Equal(t, []string{"a", "b"}, ids(q.DrainAll()))
	assert.Equal(t, 0, q.Len())
}

func TestStopQueue_NoCompartePorReferencia(t *testing.T) {
	original := stops("a", "b")
	q := routing.NewStopQueue(original)
	original[0].OrderID = "mutado"

	assert.Equal(t, []string{"a", "b"}, ids(q.DrainAll()),
		"la cola debe copiar las paradas, no compartir el slice del caller")
}
