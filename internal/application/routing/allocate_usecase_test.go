package routing_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/routing"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	domrouting "github.com/tu-usuario/gestion-pro/internal/domain/routing"
)

const testCompanyID = "00000000-0000-0000-0000-0000000000c1"

type memVehicleRepo struct{ vehicles []*entity.Vehicle }

func (r *memVehicleRepo) ListByCompany(companyID string) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		if v.CompanyID == companyID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeLinkBuilder struct{}

func (fakeLinkBuilder) BuildLink(origin string, stops []entity.RouteStop) string {
	if len(stops) == 0 {
		return ""
	}
	return fmt.Sprintf("maps://%s/%d", origin, len(stops))
}

func newAllocator(vehicles ...*entity.Vehicle) *routing.AllocateUseCase {
	return routing.NewAllocateUseCase(
		&memVehicleRepo{vehicles: vehicles},
		domrouting.NewClassifier(domrouting.DefaultRules()),
		fakeLinkBuilder{},
		decimal.NewFromInt(50),
	)
}

func vehicle(plate, regionTag string, capacityKg int64) *entity.Vehicle {
	return &entity.Vehicle{
		ID: "veh-" + plate, CompanyID: testCompanyID,
		Plate: plate, CapacityKg: decimal.NewFromInt(capacityKg), RegionTag: regionTag,
	}
}

func northOrders(n int) []dto.RouteOrderRequest {
	orders := make([]dto.RouteOrderRequest, 0, n)
	for i := 1; i <= n; i++ {
		orders = append(orders, dto.RouteOrderRequest{
			ID:              fmt.Sprintf("ord-%d", i),
			DeliveryAddress: fmt.Sprintf("Calle %d, Barrio Norte", i),
			ClientName:      fmt.Sprintf("Cliente %d", i),
		})
	}
	return orders
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Siete pedidos de una región y un solo vehículo de 250 kg (5 paradas a 50 kg
// por parada): ruta normal de 5 más ruta extra de 2 contra la misma placa.
func TestAllocate_DesbordeGeneraRutaExtra(t *testing.T) {
	uc := newAllocator(vehicle("ABC-123", "norte", 250))

	resp, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
		Orders: northOrders(7),
	})
	require.NoError(t, err)

	require.Len(t, resp.Routes, 2)
	assert.Equal(t, 0, resp.UnallocatedCount)

	normal := resp.Routes[0]
	assert.Equal(t, "ABC-123", normal.VehiclePlate)
	assert.Equal(t, "norte", normal.RegionLabel)
	assert.False(t, normal.Overflow)
	require.Len(t, normal.Stops, 5)
	assert.Equal(t, "ord-1", normal.Stops[0].OrderID, "las paradas conservan el orden de llegada")
	assert.Equal(t, "ord-5", normal.Stops[4].OrderID)
	assert.NotEmpty(t, normal.NavigationLink)

	extra := resp.Routes[1]
	assert.Equal(t, "ABC-123 (extra)", extra.VehiclePlate)
	assert.True(t, extra.Overflow)
	require.Len(t, extra.Stops, 2)
	assert.Equal(t, "ord-6", extra.Stops[0].OrderID)
	assert.Equal(t, "ord-7", extra.Stops[1].OrderID)
}

func TestAllocate_SinVehiculosTodoQuedaSinAsignar(t *testing.T) {
	uc := newAllocator()

	resp, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
		Orders: northOrders(3),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Routes)
	assert.Equal(t, 3, resp.UnallocatedCount)
}

// Propiedad de completitud: cada pedido de entrada aparece exactamente una
// vez entre todas las rutas (asignados + no asignados = entrada).
func TestAllocate_CadaPedidoApareceExactamenteUnaVez(t *testing.T) {
	uc := newAllocator(
		vehicle("ABC-123", "norte", 120),
		vehicle("DEF-456", "sur", 250),
		vehicle("GHI-789", "norte", 60),
	)

	orders := []dto.RouteOrderRequest{
		{ID: "o1", DeliveryAddress: "Av. Norte 10"},
		{ID: "o2", DeliveryAddress: "Carrera Sur 22"},
		{ID: "o3", DeliveryAddress: "Barrio Norte, Calle 3"},
		{ID: "o4", DeliveryAddress: "Diagonal 45"}, // sin palabra clave: general
		{ID: "o5", DeliveryAddress: "Zona Sur, Manzana 8"},
		{ID: "o6", DeliveryAddress: "Sector Norte 90"},
		{ID: "o7", DeliveryAddress: "Autopista Norte km 4"},
	}
	resp, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
		Orders: orders,
	})
	require.NoError(t, err)

	seen := make(map[string]int)
	assigned := 0
	for _, route := range resp.Routes {
		for _, stop := range route.Stops {
			seen[stop.OrderID]++
			assigned++
		}
	}
	assert.Equal(t, len(orders), assigned+resp.UnallocatedCount)
	for id, count := range seen {
		assert.Equal(t, 1, count, "pedido %s asignado más de una vez", id)
	}
}

// Un vehículo más pequeño que el peso promedio por parada recibe igualmente
// una parada, nunca cero.
func TestAllocate_VehiculoPequenoRecibeAlMenosUnaParada(t *testing.T) {
	uc := newAllocator(vehicle("MIN-001", "norte", 30))

	resp, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
		Orders: northOrders(1),
	})
	require.NoError(t, err)

	require.Len(t, resp.Routes, 1)
	assert.Len(t, resp.Routes[0].Stops, 1)
	assert.False(t, resp.Routes[0].Overflow)
}

// Si ningún vehículo lleva la etiqueta de la región, cualquier vehículo de la
// flota sirve: la región no se queda sin atender.
func TestAllocate_SinEtiquetaCoincidenteUsaCualquierVehiculo(t *testing.T) {
	uc := newAllocator(vehicle("XYZ-999", "oriente", 250))

	resp, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
		Orders: northOrders(2),
	})
	require.NoError(t, err)

	require.Len(t, resp.Routes, 1)
	assert.Equal(t, "XYZ-999", resp.Routes[0].VehiclePlate)
	assert.Equal(t, "norte", resp.Routes[0].RegionLabel)
	assert.Equal(t, 0, resp.UnallocatedCount)
}

func TestAllocate_EtiquetaConAcentosCoincide(t *testing.T) {
	uc := newAllocator(
		vehicle("ACC-001", "Región Norte", 250),
		vehicle("BDD-002", "sur", 250),
	)

	resp, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
		Orders: northOrders(2),
	})
	require.NoError(t, err)

	require.Len(t, resp.Routes, 1)
	assert.Equal(t, "ACC-001", resp.Routes[0].VehiclePlate,
		"la coincidencia de etiquetas ignora mayúsculas y acentos")
}

func TestAllocate_RepartoEntreVariosVehiculosDeLaRegion(t *testing.T) {
	uc := newAllocator(
		vehicle("ABC-123", "norte", 150), // 3 paradas
		vehicle("DEF-456", "norte", 100), // 2 paradas
	)

	resp, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
		Orders: northOrders(5),
	})
	require.NoError(t, err)

	require.Len(t, resp.Routes, 2)
	assert.Len(t, resp.Routes[0].Stops, 3)
	assert.Len(t, resp.Routes[1].Stops, 2)
	assert.Equal(t, 0, resp.UnallocatedCount)
	for _, r := range resp.Routes {
		assert.False(t, r.Overflow)
	}
}

func TestAllocate_OrigenRequerido(t *testing.T) {
	uc := newAllocator(vehicle("ABC-123", "norte", 250))

	_, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "   ",
		Orders: northOrders(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAllocate_PedidoSinDireccionFalla(t *testing.T) {
	uc := newAllocator(vehicle("ABC-123", "norte", 250))

	_, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
		Orders: []dto.RouteOrderRequest{{ID: "o1", DeliveryAddress: "  "}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAllocate_SinPedidosDevuelveVacio(t *testing.T) {
	uc := newAllocator(vehicle("ABC-123", "norte", 250))

	resp, err := uc.Allocate(context.Background(), testCompanyID, dto.AllocateRoutesRequest{
		Origin: "Bodega Central",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Routes)
	assert.Equal(t, 0, resp.UnallocatedCount)
}
