package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/AlertaStock-api/internal/application/alerts"
	"github.com/jhoicas/AlertaStock-api/internal/application/dto"
	"github.com/jhoicas/AlertaStock-api/internal/domain/repository"
)

type alertRepoMock struct{ mock.Mock }

func (m *alertRepoMock) ListCompanyStock(ctx context.Context, companyID string) ([]repository.StockRow, error) {
	args := m.Called(ctx, companyID)
	rows, _ := args.Get(0).([]repository.StockRow)
	return rows, args.Error(1)
}

type reportGeneratorStub struct {
	out []byte
	err error
}

func (s *reportGeneratorStub) GenerateLowStockReport(ctx context.Context, companyID string, report *dto.LowStockAlertListResponse) ([]byte, error) {
	return s.out, s.err
}

func newAlertApp(repo *alertRepoMock, gen alerts.ReportGenerator) *fiber.App {
	uc := alerts.NewUseCase(repo, alerts.DefaultParams())
	h := NewAlertHandler(uc, alerts.NewReportUseCase(uc, gen))

	app := fiber.New()
	app.Get("/api/companies/:company_id/alerts/low-stock", h.GetLowStock)
	app.Get("/api/companies/:company_id/alerts/low-stock/pdf", h.GetLowStockPDF)
	return app
}

func intP(n int) *int       { return &n }
func strP(s string) *string { return &s }

func TestAlertHandler_GetLowStock_200(t *testing.T) {
	repo := new(alertRepoMock)
	app := newAlertApp(repo, &reportGeneratorStub{})

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{
		{
			ProductID:         "p1",
			ProductName:       "Café",
			SKU:               "CAF-001",
			LowStockThreshold: intP(5),
			WarehouseID:       "wh-1",
			WarehouseName:     "Bodega Central",
			Quantity:          3,
			HasSale:           true,
			SupplierID:        strP("sup-1"),
			SupplierName:      strP("Proveedor Uno"),
			SupplierEmail:     strP("ventas@proveedor.uno"),
		},
	}, nil)

	req := httptest.NewRequest(fiber.MethodGet, "/api/companies/comp-1/alerts/low-stock", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(raw, &body))

	// Nombres de campo del contrato.
	assert.Equal(t, float64(1), body["total_alerts"])
	alertsArr, ok := body["alerts"].([]any)
	assert.True(t, ok)
	assert.Len(t, alertsArr, 1)

	alert := alertsArr[0].(map[string]any)
	assert.Equal(t, "p1", alert["product_id"])
	assert.Equal(t, "Café", alert["product_name"])
	assert.Equal(t, "CAF-001", alert["sku"])
	assert.Equal(t, "wh-1", alert["warehouse_id"])
	assert.Equal(t, "Bodega Central", alert["warehouse_name"])
	assert.Equal(t, float64(3), alert["current_stock"])
	assert.Equal(t, float64(5), alert["threshold"])
	assert.Equal(t, float64(3), alert["days_until_stockout"])

	supplier := alert["supplier"].(map[string]any)
	assert.Equal(t, "sup-1", supplier["id"])
	assert.Equal(t, "Proveedor Uno", supplier["name"])
	assert.Equal(t, "ventas@proveedor.uno", supplier["contact_email"])
}

func TestAlertHandler_GetLowStock_EmptyListIsArray(t *testing.T) {
	repo := new(alertRepoMock)
	app := newAlertApp(repo, &reportGeneratorStub{})

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{}, nil)

	req := httptest.NewRequest(fiber.MethodGet, "/api/companies/comp-1/alerts/low-stock", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"alerts":[]`)
	assert.Contains(t, string(raw), `"total_alerts":0`)
}

func TestAlertHandler_GetLowStock_500(t *testing.T) {
	repo := new(alertRepoMock)
	app := newAlertApp(repo, &reportGeneratorStub{})

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return(nil, errors.New("db down"))

	req := httptest.NewRequest(fiber.MethodGet, "/api/companies/comp-1/alerts/low-stock", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Failed to fetch low stock alerts", body["message"])
}

func TestAlertHandler_GetLowStockPDF_200(t *testing.T) {
	repo := new(alertRepoMock)
	app := newAlertApp(repo, &reportGeneratorStub{out: []byte("%PDF-1.7 fake")})

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{}, nil)

	req := httptest.NewRequest(fiber.MethodGet, "/api/companies/comp-1/alerts/low-stock/pdf", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "low-stock-report.pdf")

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.7 fake", string(raw))
}

func TestAlertHandler_GetLowStockPDF_500_GeneratorError(t *testing.T) {
	repo := new(alertRepoMock)
	app := newAlertApp(repo, &reportGeneratorStub{err: errors.New("render failed")})

	repo.On("ListCompanyStock", mock.Anything, "comp-1").Return([]repository.StockRow{}, nil)

	req := httptest.NewRequest(fiber.MethodGet, "/api/companies/comp-1/alerts/low-stock/pdf", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
