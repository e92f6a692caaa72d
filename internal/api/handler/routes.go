package handler

import (
	"net/http"

	"github.com/vortexbi/revenue-dashboard-api/internal/api/handler/router"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/deriving"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/exporting"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/filtering"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Filters retorna as rotas das intenções de filtro da sessão
func Filters(session filtering.Session) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodGet,
			Handler: GetFilters(session),
		},
		{
			Path:    "/v1/dashboard/filters/search",
			Method:  http.MethodPut,
			Handler: UpdateSearchTerm(session),
		},
		{
			Path:    "/v1/dashboard/filters/status",
			Method:  http.MethodPut,
			Handler: UpdateStatusFilter(session),
		},
		{
			Path:    "/v1/dashboard/filters/time-range",
			Method:  http.MethodPut,
			Handler: UpdateTimeRange(session),
		},
		{
			Path:    "/v1/dashboard/filters/reset",
			Method:  http.MethodPost,
			Handler: ResetFilters(session),
		},
	}
}

// Dashboard retorna as rotas das visões derivadas
func Dashboard(session filtering.Session, service deriving.Deriver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetHeadlineMetrics(session, service),
		},
		{
			Path:    "/v1/dashboard/accounts",
			Method:  http.MethodGet,
			Handler: GetAccounts(session, service),
		},
		{
			Path:    "/v1/dashboard/activity",
			Method:  http.MethodGet,
			Handler: GetActivityFeed(service),
		},
		{
			Path:    "/v1/dashboard/goals",
			Method:  http.MethodGet,
			Handler: GetGoalsProgress(service),
		},
	}
}

// Charts retorna as rotas da geometria dos gráficos
func Charts(session filtering.Session, service deriving.Deriver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/revenue-trend",
			Method:  http.MethodGet,
			Handler: GetRevenueTrendChart(session, service),
		},
		{
			Path:    "/v1/charts/product-performance",
			Method:  http.MethodGet,
			Handler: GetProductBarChart(service),
		},
		{
			Path:    "/v1/charts/channel-split",
			Method:  http.MethodGet,
			Handler: GetChannelDonutChart(service),
		},
	}
}

// Export retorna a rota de download do relatório executivo
func Export(session filtering.Session, deriver deriving.Deriver, exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportExecutiveSummary(session, deriver, exporter),
		},
	}
}
