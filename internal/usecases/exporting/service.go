package exporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vortexbi/revenue-dashboard-api/internal/config"
	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
	"github.com/vortexbi/revenue-dashboard-api/pkg/utils"
)

// Exporter define a geração do relatório executivo para download
type Exporter interface {
	// ExecutiveSummary serializa os filtros ativos e as visões derivadas
	// em um documento delimitado por vírgulas
	ExecutiveSummary(
		filters domain.Filters,
		metrics domain.HeadlineMetrics,
		summary domain.AccountSummary,
		accounts []domain.Account,
	) (*domain.ExportDocument, error)
}

// Service implementa a interface Exporter
type Service struct {
	filenamePrefix string
	now            func() time.Time
}

// NewService cria o serviço de exportação
func NewService(cfg *config.Config) *Service {
	return &Service{
		filenamePrefix: cfg.Export.FilenamePrefix,
		now:            time.Now,
	}
}

// ExecutiveSummary monta o relatório em cinco seções: título e carimbo
// de geração, filtros ativos, métricas de destaque, carteira filtrada e
// contagem por status. Carteira vazia recebe uma linha explicativa no
// lugar da tabela.
func (s *Service) ExecutiveSummary(
	filters domain.Filters,
	metrics domain.HeadlineMetrics,
	summary domain.AccountSummary,
	accounts []domain.Account,
) (*domain.ExportDocument, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao gerar o ID do documento")
	}

	generatedAt := s.now().UTC()
	w := &rowWriter{}

	w.Row("Revenue Intelligence Dashboard Export")
	w.Row("Generated At", generatedAt.Format(time.RFC3339))
	w.Row(
		"Filters",
		fmt.Sprintf("Status: %s", filters.Status),
		fmt.Sprintf("Time Range: %s", strings.ToUpper(string(filters.TimeRange))),
		fmt.Sprintf("Search: %s", searchLabel(filters)),
	)
	w.Blank()

	w.Row("Headline Metrics")
	w.Row("Metric", "Value", "Delta")
	w.Row("Recurring revenue", utils.FormatCurrency(metrics.Revenue), utils.FormatDeltaPercent(metrics.RevenueGrowth))
	w.Row("Operating expenses", utils.FormatCurrency(metrics.Expenses), utils.FormatDeltaPercent(metrics.ExpenseGrowth))
	w.Row("New customers", utils.FormatCount(metrics.NewCustomers), utils.FormatDeltaPercent(metrics.CustomerGrowth))
	w.Row(
		"Portfolio health",
		fmt.Sprintf("%d / %d", summary.StatusTally.OnTrack, len(accounts)),
		utils.FormatDeltaPercent(summary.AvgChange),
	)
	w.Blank()

	w.Row("Accounts")
	w.Row("Account", "Owner", "Industry", "Status", "MRR", "Change %", "Last Touch (UTC)")
	if len(accounts) == 0 {
		w.Row("No accounts matched your filters")
	} else {
		for _, account := range accounts {
			w.Row(
				account.Company,
				account.Owner,
				account.Industry,
				string(account.Status),
				utils.FormatCurrency(account.MRR),
				utils.FormatChangePercent(account.Change),
				account.LastTouch.UTC().Format(time.RFC3339),
			)
		}
	}
	w.Blank()

	w.Row("Status Breakdown")
	w.Row("Status", "Count")
	w.Row(string(domain.AccountStatusOnTrack), utils.FormatCount(summary.StatusTally.OnTrack))
	w.Row(string(domain.AccountStatusAtRisk), utils.FormatCount(summary.StatusTally.AtRisk))
	w.Row(string(domain.AccountStatusBlocked), utils.FormatCount(summary.StatusTally.Blocked))

	return &domain.ExportDocument{
		ID:          id,
		Filename:    fmt.Sprintf("%s-%s.csv", s.filenamePrefix, generatedAt.Format(time.RFC3339)),
		ContentType: "text/csv; charset=utf-8",
		Body:        []byte(w.String()),
		GeneratedAt: generatedAt,
	}, nil
}

// searchLabel retorna o termo de busca ativo ou um travessão quando vazio
func searchLabel(filters domain.Filters) string {
	if term := strings.TrimSpace(filters.SearchTerm); term != "" {
		return term
	}
	return "—"
}
