package handler

import (
	"net/http"

	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/charting"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/deriving"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/filtering"
	"github.com/vortexbi/revenue-dashboard-api/pkg/log"
)

func GetRevenueTrendChart(session filtering.Session, service deriving.Deriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := session.Current()
		window := service.RevenueWindow(filters)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"time_range": string(filters.TimeRange),
		}).Infof("charts: building revenue trend geometry for %d points", len(window))

		writeJSON(w, r, charting.BuildTimeSeries(window))
	})
}

func GetProductBarChart(service deriving.Deriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, charting.BuildBars(service.ProductPerformance()))
	})
}

func GetChannelDonutChart(service deriving.Deriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, charting.BuildDonut(service.ChannelSplit()))
	})
}
