package alerts

import "context"

// ReportUseCase genera el reporte PDF de alertas de stock bajo: misma
// computación que GetLowStockAlerts, renderizada como documento.
type ReportUseCase struct {
	alerts    *UseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso del reporte.
func NewReportUseCase(alerts *UseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{alerts: alerts, generator: generator}
}

// GenerateLowStockReport devuelve los bytes del PDF con las alertas actuales
// de la empresa.
func (uc *ReportUseCase) GenerateLowStockReport(ctx context.Context, companyID string) ([]byte, error) {
	report, err := uc.alerts.GetLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLowStockReport(ctx, companyID, report)
}
