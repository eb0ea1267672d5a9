package maps

import (
	"net/url"
	"strings"

	"github.com/tu-usuario/gestion-pro/internal/application/routing"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

var _ routing.LinkBuilder = (*GoogleMapsLinkBuilder)(nil)

// GoogleMapsLinkBuilder construye enlaces de navegación de Google Maps para
// una ruta de reparto: el origen va como primer y último punto (salida y
// regreso a bodega) y las paradas quedan como waypoints intermedios que el
// servicio puede reordenar. La secuencia interna es FIFO; la optimización del
// camino se delega al servicio de mapas.
type GoogleMapsLinkBuilder struct {
	baseURL string
}

// NewGoogleMapsLinkBuilder construye el builder con la URL base de la API de
// direcciones (vacío = producción de Google Maps).
func NewGoogleMapsLinkBuilder(baseURL string) *GoogleMapsLinkBuilder {
	if baseURL == "" {
		baseURL = "https://www.google.com/maps/dir/"
	}
	return &GoogleMapsLinkBuilder{baseURL: baseURL}
}

// BuildLink arma el enlace. Con cero paradas devuelve cadena vacía.
func (b *GoogleMapsLinkBuilder) BuildLink(origin string, stops []entity.RouteStop) string {
	if len(stops) == 0 {
		return ""
	}
	waypoints := make([]string, 0, len(stops))
	for _, s := range stops {
		waypoints = append(waypoints, s.DeliveryAddress)
	}
	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", origin)
	params.Set("destination", origin)
	params.Set("waypoints", strings.Join(waypoints, "|"))
	params.Set("travelmode", "driving")
	return b.baseURL + "?" + params.Encode()
}
