package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// VehicleRepository acceso de solo lectura al registro de flota.
type VehicleRepository interface {
	// ListByCompany devuelve los vehículos de la empresa en orden estable
	// (por placa) para que la asignación de rutas sea determinista.
	ListByCompany(companyID string) ([]*entity.Vehicle, error)
}
