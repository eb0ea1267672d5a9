package dto

// AllocateRoutesRequest body para POST /api/routes/allocate.
type AllocateRoutesRequest struct {
	Origin string              `json:"origin"`
	Orders []RouteOrderRequest `json:"orders"`
}

// RouteOrderRequest un pedido candidato a reparto.
type RouteOrderRequest struct {
	ID              string `json:"id"`
	DeliveryAddress string `json:"delivery_address"`
	ClientName      string `json:"client_name,omitempty"`
}

// RouteStopResponse una parada dentro de una ruta.
type RouteStopResponse struct {
	OrderID         string `json:"order_id"`
	DeliveryAddress string `json:"delivery_address"`
	ClientName      string `json:"client_name,omitempty"`
}

// RouteResponse una ruta asignada a un vehículo.
type RouteResponse struct {
	VehiclePlate   string              `json:"vehicle_plate"`
	RegionLabel    string              `json:"region_label"`
	Overflow       bool                `json:"overflow,omitempty"`
	Stops          []RouteStopResponse `json:"stops"`
	NavigationLink string              `json:"navigation_link"`
}

// AllocateRoutesResponse resultado de la asignación.
type AllocateRoutesResponse struct {
	Routes           []RouteResponse `json:"routes"`
	UnallocatedCount int             `json:"unallocated_count"`
}
