package handler

import (
	"net/http"

	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/deriving"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/filtering"
	"github.com/vortexbi/revenue-dashboard-api/pkg/log"
)

// accountsResponse devolve a carteira filtrada junto com o agregado,
// como a tabela do dashboard consome
type accountsResponse struct {
	Accounts []domain.Account      `json:"accounts"`
	Summary  domain.AccountSummary `json:"summary"`
}

func GetHeadlineMetrics(session filtering.Session, service deriving.Deriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := session.Current()

		log.ForContext(r.Context()).WithFields(log.Fields{
			"time_range": string(filters.TimeRange),
		}).Info("dashboard: computing headline metrics")

		writeJSON(w, r, service.HeadlineMetrics(filters))
	})
}

func GetAccounts(session filtering.Session, service deriving.Deriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := session.Current()

		accounts := service.FilterAccounts(filters)
		summary := service.AccountSummary(filters)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"status":      string(filters.Status),
			"search_term": filters.SearchTerm,
		}).Infof("dashboard: %d accounts matched active filters", len(accounts))

		writeJSON(w, r, accountsResponse{Accounts: accounts, Summary: summary})
	})
}

func GetActivityFeed(service deriving.Deriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.ActivityFeed())
	})
}

func GetGoalsProgress(service deriving.Deriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.GoalsProgress())
	})
}
