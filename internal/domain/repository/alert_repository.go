package repository

import "context"

// StockRow es el resultado crudo del repositorio para una fila de inventario
// de la empresa, enriquecida con producto, bodega, existencia de ventas y el
// primer proveedor asociado. El filtrado por umbral se hace en el caso de uso
// para que el umbral por defecto sea configurable.
type StockRow struct {
	ProductID         string
	ProductName       string
	SKU               string
	LowStockThreshold *int // nil = sin umbral propio
	WarehouseID       string
	WarehouseName     string
	Quantity          int
	HasSale           bool // existe al menos un inventory_log con reason "sale"

	// Primer proveedor asociado al producto (orden estable por vínculo más
	// antiguo). Campos nil cuando el producto no tiene proveedores.
	SupplierID    *string
	SupplierName  *string
	SupplierEmail *string
}

// AlertRepository define el puerto de lectura para la evaluación de alertas
// de stock bajo (DIP). Una sola consulta batched reemplaza el escaneo
// producto-por-producto e inventario-por-inventario.
type AlertRepository interface {
	// ListCompanyStock devuelve todas las filas de inventario de los
	// productos de la empresa, en orden de escaneo: productos por fecha de
	// creación y, dentro de cada producto, inventarios por fecha de creación.
	ListCompanyStock(ctx context.Context, companyID string) ([]StockRow, error)
}
