package routing

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// LinkBuilder construye un enlace de navegación para una ruta. El servicio
// de mapas externo recibe el origen y la lista de paradas y devuelve una URL
// navegable; la optimización fina del camino es suya, no nuestra.
type LinkBuilder interface {
	BuildLink(origin string, stops []entity.RouteStop) string
}
