package routing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	domrouting "github.com/tu-usuario/gestion-pro/internal/domain/routing"
)

// AllocateUseCase agrupa pedidos confirmados por región geográfica y los
// empaca en vehículos de reparto. Es una operación de solo lectura sobre
// estado compartido: lee flota y pedidos, calcula y devuelve; no persiste
// nada. Dos invocaciones concurrentes sobre conjuntos de pedidos solapados
// pueden asignar el mismo pedido dos veces (limitación conocida: los pedidos
// no se marcan "en ruta" entre lectura y confirmación).
type AllocateUseCase struct {
	vehicleRepo   repository.VehicleRepository
	classifier    *domrouting.Classifier
	links         LinkBuilder
	avgStopWeight decimal.Decimal
}

// NewAllocateUseCase construye el caso de uso. avgStopWeight es el peso
// promedio asumido por parada (kg): la capacidad de un vehículo en paradas es
// floor(capacidad / avgStopWeight), mínimo 1.
func NewAllocateUseCase(
	vehicleRepo repository.VehicleRepository,
	classifier *domrouting.Classifier,
	links LinkBuilder,
	avgStopWeight decimal.Decimal,
) *AllocateUseCase {
	if !avgStopWeight.GreaterThan(decimal.Zero) {
		avgStopWeight = decimal.NewFromInt(50)
	}
	return &AllocateUseCase{
		vehicleRepo:   vehicleRepo,
		classifier:    classifier,
		links:         links,
		avgStopWeight: avgStopWeight,
	}
}

// Allocate clasifica cada pedido en su balde regional (primera regla que
// coincide gana), arma una cola FIFO por región y reparte en los vehículos
// candidatos de cada región en orden estable. Las paradas que no caben en
// ningún vehículo de la región salen en una ruta extra contra la placa del
// primer vehículo; si la empresa no tiene vehículos, esos pedidos se reportan
// como no asignados.
func (uc *AllocateUseCase) Allocate(ctx context.Context, companyID string, req dto.AllocateRoutesRequest) (*dto.AllocateRoutesResponse, error) {
	_ = ctx
	if strings.TrimSpace(req.Origin) == "" {
		return nil, fmt.Errorf("%w: se requiere el origen", domain.ErrInvalidInput)
	}

	vehicles, err := uc.vehicleRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	// Clasificación y agrupación FIFO por región, conservando el orden de
	// aparición de las regiones para una salida determinista.
	queues := make(map[string]*domrouting.StopQueue)
	var regionOrder []string
	for _, o := range req.Orders {
		if o.ID == "" || strings.TrimSpace(o.DeliveryAddress) == "" {
			return nil, fmt.Errorf("%w: pedido sin id o sin dirección de entrega", domain.ErrInvalidInput)
		}
		region := uc.classifier.Classify(o.DeliveryAddress)
		q, ok := queues[region]
		if !ok {
			q = domrouting.NewStopQueue(nil)
			queues[region] = q
			regionOrder = append(regionOrder, region)
		}
		q.Enqueue(entity.RouteStop{
			OrderID:         o.ID,
			DeliveryAddress: o.DeliveryAddress,
			ClientName:      o.ClientName,
		})
	}

	resp := &dto.AllocateRoutesResponse{Routes: []dto.RouteResponse{}}
	for _, region := range regionOrder {
		queue := queues[region]
		candidates := uc.vehiclesForRegion(region, vehicles)
		if len(candidates) == 0 {
			// Región sin ningún vehículo posible: pedidos no asignados.
			resp.UnallocatedCount += queue.Len()
			continue
		}
		for _, v := range candidates {
			if queue.Len() == 0 {
				break
			}
			stops := queue.DequeueUpTo(uc.stopSlots(v))
			resp.Routes = append(resp.Routes, uc.buildRoute(req.Origin, v.Plate, region, false, stops))
		}
		if queue.Len() > 0 {
			// Vehículos agotados: el resto sale en una ruta extra contra el
			// primer vehículo de la región en lugar de descartarse.
			resp.Routes = append(resp.Routes,
				uc.buildRoute(req.Origin, candidates[0].Plate+" (extra)", region, true, queue.DrainAll()))
		}
	}
	return resp, nil
}

// vehiclesForRegion vehículos cuya etiqueta coincide con la región
// (subcadena en cualquier dirección, sin mayúsculas ni acentos); si ninguno
// coincide, cualquier vehículo sirve para no dejar la región sin atender.
func (uc *AllocateUseCase) vehiclesForRegion(region string, vehicles []*entity.Vehicle) []*entity.Vehicle {
	normRegion := domrouting.Normalize(region)
	var matched []*entity.Vehicle
	for _, v := range vehicles {
		tag := domrouting.Normalize(v.RegionTag)
		if tag == "" {
			continue
		}
		if strings.Contains(tag, normRegion) || strings.Contains(normRegion, tag) {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return vehicles
	}
	return matched
}

// stopSlots capacidad del vehículo en paradas: floor(capacidad / peso
// promedio), nunca menos de 1. Un vehículo pequeño recibe al menos una parada
// en vez de saltarse; esto acota el número de paradas, no el peso real.
func (uc *AllocateUseCase) stopSlots(v *entity.Vehicle) int {
	slots := int(v.CapacityKg.Div(uc.avgStopWeight).IntPart())
	if slots < 1 {
		slots = 1
	}
	return slots
}

func (uc *AllocateUseCase) buildRoute(origin, plate, region string, overflow bool, stops []entity.RouteStop) dto.RouteResponse {
	route := dto.RouteResponse{
		VehiclePlate:   plate,
		RegionLabel:    region,
		Overflow:       overflow,
		Stops:          make([]dto.RouteStopResponse, 0, len(stops)),
		NavigationLink: uc.links.BuildLink(origin, stops),
	}
	for _, s := range stops {
		route.Stops = append(route.Stops, dto.RouteStopResponse{
			OrderID:         s.OrderID,
			DeliveryAddress: s.DeliveryAddress,
			ClientName:      s.ClientName,
		})
	}
	return route
}
