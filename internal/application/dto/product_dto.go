package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/products.
// InitialQuantity es puntero para distinguir "ausente" (inválido) de 0
// (válido): un producto puede nacer sin stock.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	WarehouseID     string          `json:"warehouse_id"`
	InitialQuantity *int            `json:"initial_quantity"`
}

// CreateProductResponse salida 201 de POST /api/products.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// ProductResponse salida de GET /api/products/:id.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Price             decimal.Decimal `json:"price"`
	CompanyID         *string         `json:"company_id"`
	LowStockThreshold *int            `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
