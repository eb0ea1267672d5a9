package entity

// RouteStop es una parada de una ruta de reparto: un pedido con su dirección.
type RouteStop struct {
	OrderID         string
	DeliveryAddress string
	ClientName      string
}

// RouteAssignment es el resultado efímero de una asignación de rutas: un
// vehículo con su secuencia de paradas y el enlace de navegación. No se
// persiste; se recalcula en cada invocación del asignador.
type RouteAssignment struct {
	VehiclePlate   string
	RegionLabel    string
	Overflow       bool // ruta extra: paradas que no cupieron en los vehículos de la región
	Stops          []RouteStop
	NavigationLink string
}
