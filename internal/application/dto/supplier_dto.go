package dto

import "time"

// CreateSupplierRequest body de POST /api/suppliers.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// AttachSupplierRequest body de POST /api/products/:id/suppliers.
type AttachSupplierRequest struct {
	SupplierID string `json:"supplier_id"`
}
