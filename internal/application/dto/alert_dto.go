package dto

// AlertSupplierDTO proveedor surfaced en una alerta (solo el primero asociado).
type AlertSupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta por inventario bajo umbral. Los nombres de
// campo son parte del contrato HTTP.
type LowStockAlertDTO struct {
	ProductID         string            `json:"product_id"`
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	WarehouseID       string            `json:"warehouse_id"`
	WarehouseName     string            `json:"warehouse_name"`
	CurrentStock      int               `json:"current_stock"`
	Threshold         int               `json:"threshold"`
	DaysUntilStockout int               `json:"days_until_stockout"`
	Supplier          *AlertSupplierDTO `json:"supplier"`
}

// LowStockAlertListResponse salida de GET /api/companies/:company_id/alerts/low-stock.
type LowStockAlertListResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
