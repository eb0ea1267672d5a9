package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de solo lectura sobre el registro de flota.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// ListByCompany vehículos de la empresa ordenados por placa (orden estable
// para que la asignación de rutas sea determinista).
func (r *VehicleRepo) ListByCompany(companyID string) ([]*entity.Vehicle, error) {
	query := `
		SELECT id, company_id, plate, capacity_kg, region_tag, driver_name, created_at
		FROM vehicles WHERE company_id = $1 ORDER BY plate`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		var regionTag, driverName *string
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.Plate, &v.CapacityKg,
			&regionTag, &driverName, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		if regionTag != nil {
			v.RegionTag = *regionTag
		}
		if driverName != nil {
			v.DriverName = *driverName
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
