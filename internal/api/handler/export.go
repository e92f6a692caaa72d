package handler

import (
	"fmt"
	"net/http"

	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/deriving"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/exporting"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/filtering"
	"github.com/vortexbi/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vortexbi/revenue-dashboard-api/pkg/log"
)

// ExportExecutiveSummary monta o relatório executivo com os filtros
// ativos da sessão e o entrega como download CSV
func ExportExecutiveSummary(
	session filtering.Session,
	deriver deriving.Deriver,
	exporter exporting.Exporter,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := session.Current()
		metrics := deriver.HeadlineMetrics(filters)
		summary := deriver.AccountSummary(filters)
		accounts := deriver.FilterAccounts(filters)

		document, err := exporter.ExecutiveSummary(filters, metrics, summary, accounts)
		if err != nil {
			logger.WithError(err).Error("export: failed to build executive summary")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "falha ao gerar o relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"export_id":  document.ID,
			"status":     string(filters.Status),
			"time_range": string(filters.TimeRange),
		}).Info("export: executive summary generated")

		w.Header().Set("Content-Type", document.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.Filename))

		if _, err := w.Write(document.Body); err != nil {
			logger.WithError(err).Error("export: failed to write document body")
		}
	})
}
