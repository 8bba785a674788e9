package entity

import "time"

// Area es un local o área física que origina pedidos.
type Area struct {
	ID   string
	Name string
}

// Employee es un responsable asignable a un área.
type Employee struct {
	ID       string
	Username string
}

// ActiveRequest es un pedido activo visible desde la pantalla de bodega.
// ProductCount refleja la última sincronización recibida del terminal.
type ActiveRequest struct {
	ID           string
	AreaID       string
	AreaName     string
	EmployeeName string
	ProductCount int
	CreatedAt    time.Time
}
