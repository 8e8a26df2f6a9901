package entity

import "time"

// Inventory representa el stock de un producto en una bodega concreta.
// Una fila por par producto-bodega.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
