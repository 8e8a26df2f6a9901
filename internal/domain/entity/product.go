package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible identificado por SKU (único global).
// El stock se maneja por bodega en Inventory; los proveedores se vinculan N:M
// vía product_suppliers.
type Product struct {
	ID                string
	Name              string
	SKU               string // único en todo el sistema, no por empresa
	Price             decimal.Decimal
	CompanyID         *string // nil cuando el producto aún no está asignado a una empresa
	LowStockThreshold *int    // nil = usar el umbral por defecto al evaluar alertas
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
