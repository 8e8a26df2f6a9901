package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/AlertaStock-api/internal/application/alerts"
	"github.com/jhoicas/AlertaStock-api/internal/application/dto"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock bajo.
type AlertHandler struct {
	uc     *alerts.UseCase
	report *alerts.ReportUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase, report *alerts.ReportUseCase) *AlertHandler {
	return &AlertHandler{uc: uc, report: report}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	out, err := h.uc.GetLowStockAlerts(c.Context(), companyID)
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID).Msg("alertas de stock bajo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to fetch low stock alerts"})
	}
	return c.JSON(out)
}

// GetLowStockPDF godoc
// @Summary      Reporte PDF de alertas de stock bajo
// @Tags         alerts
// @Produce      application/pdf
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/pdf [get]
func (h *AlertHandler) GetLowStockPDF(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	pdfBytes, err := h.report.GenerateLowStockReport(c.Context(), companyID)
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID).Msg("reporte PDF de alertas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to generate report"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="low-stock-report.pdf"`)
	return c.Send(pdfBytes)
}
