package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/filtering"
	"github.com/vortexbi/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vortexbi/revenue-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type searchTermRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type statusFilterRequest struct {
	Status string `json:"status"`
}

type timeRangeRequest struct {
	TimeRange string `json:"timeRange"`
}

func GetFilters(session filtering.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, session.Current())
	})
}

func UpdateSearchTerm(session filtering.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req searchTermRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("filters: invalid search term payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
			return
		}

		session.SetSearchTerm(req.SearchTerm)
		logger.WithField("search_term", req.SearchTerm).Info("filters: search term updated")

		writeJSON(w, r, session.Current())
	})
}

func UpdateStatusFilter(session filtering.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req statusFilterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("filters: invalid status payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
			return
		}

		status, err := domain.ParseStatusFilter(req.Status)
		if err != nil {
			logger.WithField("status", req.Status).Warn("filters: unknown status filter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		session.SetStatus(status)
		logger.WithField("status", string(status)).Info("filters: status filter updated")

		writeJSON(w, r, session.Current())
	})
}

func UpdateTimeRange(session filtering.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req timeRangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("filters: invalid time range payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
			return
		}

		timeRange, err := domain.ParseTimeRange(req.TimeRange)
		if err != nil {
			logger.WithField("time_range", req.TimeRange).Warn("filters: unknown time range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		session.SetTimeRange(timeRange)
		logger.WithField("time_range", string(timeRange)).Info("filters: time range updated")

		writeJSON(w, r, session.Current())
	})
}

func ResetFilters(session filtering.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session.Reset()
		log.ForContext(r.Context()).Info("filters: session filters reset")

		writeJSON(w, r, session.Current())
	})
}

// writeJSON serializa a resposta e registra falhas de encode
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
