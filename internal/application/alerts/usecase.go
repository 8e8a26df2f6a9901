package alerts

import (
	"context"

	"github.com/jhoicas/AlertaStock-api/internal/application/dto"
	"github.com/jhoicas/AlertaStock-api/internal/domain/repository"
)

// Valores por defecto de la evaluación de alertas. AverageDailySales es un
// placeholder: no se calcula desde el historial de ventas.
const (
	DefaultLowStockThreshold = 10
	DefaultAverageDailySales = 1
)

// Params parámetros de la evaluación, sustituibles en tests y por config.
type Params struct {
	DefaultThreshold  int // umbral cuando el producto no define low_stock_threshold
	AverageDailySales int // ventas diarias promedio asumidas para el días-hasta-quiebre
}

// DefaultParams devuelve los parámetros estándar.
func DefaultParams() Params {
	return Params{
		DefaultThreshold:  DefaultLowStockThreshold,
		AverageDailySales: DefaultAverageDailySales,
	}
}

// UseCase calcula las alertas de stock bajo de una empresa: inventarios con
// cantidad bajo el umbral efectivo y con al menos una venta registrada.
type UseCase struct {
	repo   repository.AlertRepository
	params Params
}

// NewUseCase construye el caso de uso. Parámetros no positivos caen al valor
// por defecto.
func NewUseCase(repo repository.AlertRepository, params Params) *UseCase {
	if params.DefaultThreshold <= 0 {
		params.DefaultThreshold = DefaultLowStockThreshold
	}
	if params.AverageDailySales <= 0 {
		params.AverageDailySales = DefaultAverageDailySales
	}
	return &UseCase{repo: repo, params: params}
}

// GetLowStockAlerts evalúa todas las filas de inventario de la empresa en una
// sola pasada y devuelve la lista ordenada de alertas más su total.
//
// Reglas por fila:
//  1. umbral efectivo = low_stock_threshold del producto, o DefaultThreshold.
//  2. cantidad >= umbral → sin alerta.
//  3. sin inventory_log con reason "sale" → sin alerta, incluso a stock cero.
//  4. days_until_stockout = floor(cantidad / AverageDailySales).
//  5. supplier = primer proveedor asociado o null.
//
// Cualquier error de persistencia aborta el cómputo completo; nunca se
// devuelve una lista parcial.
func (uc *UseCase) GetLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertListResponse, error) {
	rows, err := uc.repo.ListCompanyStock(ctx, companyID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, row := range rows {
		threshold := uc.params.DefaultThreshold
		if row.LowStockThreshold != nil {
			threshold = *row.LowStockThreshold
		}
		if row.Quantity >= threshold {
			continue
		}
		if !row.HasSale {
			continue
		}

		var supplier *dto.AlertSupplierDTO
		if row.SupplierID != nil {
			supplier = &dto.AlertSupplierDTO{
				ID:           *row.SupplierID,
				Name:         deref(row.SupplierName),
				ContactEmail: deref(row.SupplierEmail),
			}
		}

		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentStock:      row.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: row.Quantity / uc.params.AverageDailySales,
			Supplier:          supplier,
		})
	}

	return &dto.LowStockAlertListResponse{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
