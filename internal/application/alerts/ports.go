package alerts

import (
	"context"

	"github.com/jhoicas/AlertaStock-api/internal/application/dto"
)

// ReportGenerator renderiza un listado de alertas como documento PDF.
// Implementado en internal/infrastructure/pdf.
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, companyID string, report *dto.LowStockAlertListResponse) ([]byte, error)
}
