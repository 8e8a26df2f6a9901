package alerts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/AlertaStock-api/internal/domain/repository"
)

type alertRepoMock struct{ mock.Mock }

func (m *alertRepoMock) ListCompanyStock(ctx context.Context, companyID string) ([]repository.StockRow, error) {
	args := m.Called(ctx, companyID)
	rows, _ := args.Get(0).([]repository.StockRow)
	return rows, args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func saleRow(productID string, quantity int, threshold *int) repository.StockRow {
	return repository.StockRow{
		ProductID:         productID,
		ProductName:       "Producto " + productID,
		SKU:               "SKU-" + productID,
		LowStockThreshold: threshold,
		WarehouseID:       "wh-1",
		WarehouseName:     "Bodega Central",
		Quantity:          quantity,
		HasSale:           true,
	}
}

func TestGetLowStockAlerts_FiltersByEffectiveThreshold(t *testing.T) {
	repo := new(alertRepoMock)
	uc := NewUseCase(repo, DefaultParams())

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{
		// Umbral propio 5, stock 3: alerta.
		saleRow("p1", 3, intPtr(5)),
		// Sin umbral propio (default 10), stock 20: sin alerta.
		saleRow("p2", 20, nil),
		// Stock igual al umbral no es alerta (estrictamente menor).
		saleRow("p3", 5, intPtr(5)),
	}, nil)

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, out.TotalAlerts)
	assert.Len(t, out.Alerts, 1)

	alert := out.Alerts[0]
	assert.Equal(t, "p1", alert.ProductID)
	assert.Equal(t, "SKU-p1", alert.SKU)
	assert.Equal(t, "wh-1", alert.WarehouseID)
	assert.Equal(t, "Bodega Central", alert.WarehouseName)
	assert.Equal(t, 3, alert.CurrentStock)
	assert.Equal(t, 5, alert.Threshold)
	assert.Equal(t, 3, alert.DaysUntilStockout)
	assert.Nil(t, alert.Supplier)
}

func TestGetLowStockAlerts_DefaultThresholdApplies(t *testing.T) {
	repo := new(alertRepoMock)
	uc := NewUseCase(repo, DefaultParams())

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{
		saleRow("p1", 9, nil), // default 10, stock 9: alerta
	}, nil)

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, out.TotalAlerts)
	assert.Equal(t, DefaultLowStockThreshold, out.Alerts[0].Threshold)
}

// Un inventario sin ventas registradas nunca alerta, ni siquiera a stock cero.
func TestGetLowStockAlerts_RequiresSaleLog(t *testing.T) {
	repo := new(alertRepoMock)
	uc := NewUseCase(repo, DefaultParams())

	row := saleRow("p1", 0, nil)
	row.HasSale = false
	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{row}, nil)

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, out.TotalAlerts)
	// Lista vacía, nunca nil: el JSON debe serializar [] y no null.
	assert.NotNil(t, out.Alerts)
	assert.Empty(t, out.Alerts)
}

func TestGetLowStockAlerts_SupplierFromRow(t *testing.T) {
	repo := new(alertRepoMock)
	uc := NewUseCase(repo, DefaultParams())

	row := saleRow("p1", 2, nil)
	row.SupplierID = strPtr("sup-1")
	row.SupplierName = strPtr("Proveedor Uno")
	row.SupplierEmail = strPtr("ventas@proveedor.uno")
	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{row}, nil)

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, out.TotalAlerts)

	sup := out.Alerts[0].Supplier
	assert.NotNil(t, sup)
	assert.Equal(t, "sup-1", sup.ID)
	assert.Equal(t, "Proveedor Uno", sup.Name)
	assert.Equal(t, "ventas@proveedor.uno", sup.ContactEmail)
}

func TestGetLowStockAlerts_OverriddenParams(t *testing.T) {
	repo := new(alertRepoMock)
	uc := NewUseCase(repo, Params{DefaultThreshold: 3, AverageDailySales: 2})

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{
		saleRow("p1", 2, nil), // default 3, stock 2: alerta
		saleRow("p2", 5, nil), // default 3, stock 5: sin alerta
	}, nil)

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, out.TotalAlerts)
	assert.Equal(t, 3, out.Alerts[0].Threshold)
	// floor(2/2) = 1
	assert.Equal(t, 1, out.Alerts[0].DaysUntilStockout)
}

func TestGetLowStockAlerts_NonPositiveParamsFallBack(t *testing.T) {
	uc := NewUseCase(new(alertRepoMock), Params{DefaultThreshold: 0, AverageDailySales: -1})
	assert.Equal(t, DefaultLowStockThreshold, uc.params.DefaultThreshold)
	assert.Equal(t, DefaultAverageDailySales, uc.params.AverageDailySales)
}

func TestGetLowStockAlerts_TotalMatchesLen(t *testing.T) {
	repo := new(alertRepoMock)
	uc := NewUseCase(repo, DefaultParams())

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{
		saleRow("p1", 1, nil),
		saleRow("p2", 2, nil),
		saleRow("p3", 3, nil),
	}, nil)

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, len(out.Alerts), out.TotalAlerts)
	assert.Equal(t, 3, out.TotalAlerts)
}

func TestGetLowStockAlerts_RepoError(t *testing.T) {
	repo := new(alertRepoMock)
	uc := NewUseCase(repo, DefaultParams())

	dbErr := errors.New("db down")
	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return(nil, dbErr)

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1")
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, out)
}
