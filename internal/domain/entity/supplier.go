package entity

import "time"

// Supplier representa un proveedor vinculable a cero o más productos.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
