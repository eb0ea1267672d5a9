package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// PackagingTaskRepository acceso a tareas de empaque.
type PackagingTaskRepository interface {
	// Upsert inserta la tarea o, si ya existe una para la misma orden de
	// producción, actualiza quantity_to_package y devuelve el estado a
	// pending. El índice único sobre production_run_id garantiza que nunca
	// haya dos tareas para el mismo run, incluso bajo upserts concurrentes.
	Upsert(task *entity.PackagingTask) error
	GetByRunID(productionRunID string) (*entity.PackagingTask, error)
}
