package maps

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

func TestBuildLink_OrigenComoSalidaYRegreso(t *testing.T) {
	b := NewGoogleMapsLinkBuilder("")

	link := b.BuildLink("Bodega Central, Calle 1 #2-3", []entity.RouteStop{
		{OrderID: "o1", DeliveryAddress: "Av. Norte 10"},
		{OrderID: "o2", DeliveryAddress: "Carrera 45 #12-80"},
	})
	require.True(t, strings.HasPrefix(link, "https://www.google.com/maps/dir/?"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "1", q.Get("api"))
	assert.Equal(t, "Bodega Central, Calle 1 #2-3", q.Get("origin"))
	assert.Equal(t, q.Get("origin"), q.Get("destination"), "la ruta vuelve a la bodega")
	assert.Equal(t, "Av. Norte 10|Carrera 45 #12-80", q.Get("waypoints"))
	assert.Equal(t, "driving", q.Get("travelmode"))
}

func TestBuildLink_SinParadasDevuelveVacio(t *testing.T) {
	b := NewGoogleMapsLinkBuilder("")
	assert.Empty(t, b.BuildLink("Bodega Central", nil))
}
