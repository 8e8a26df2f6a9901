package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AlertaStock-api/internal/application/alerts"
	"github.com/jhoicas/AlertaStock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	SupplierUC  *usecase.SupplierUseCase
	AlertsUC    *alerts.UseCase
	ReportUC    *alerts.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)

	// Vínculo producto-proveedor
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	products.Post("/:id/suppliers", supplierHandler.Attach)

	// Suppliers
	suppliers := api.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Alertas de stock bajo por empresa
	companies := api.Group("/companies")
	alertHandler := NewAlertHandler(deps.AlertsUC, deps.ReportUC)
	companies.Get("/:company_id/alerts/low-stock", alertHandler.GetLowStock)
	companies.Get("/:company_id/alerts/low-stock/pdf", alertHandler.GetLowStockPDF)
}
