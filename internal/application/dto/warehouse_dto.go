package dto

import "time"

// CreateWarehouseRequest body de POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// WarehouseListResponse lista de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
