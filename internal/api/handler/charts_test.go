package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/charting"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/deriving/mocks"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/filtering"
	"go.uber.org/mock/gomock"
)

func TestGetRevenueTrendChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := filtering.NewService()
	window := []domain.RevenuePoint{
		{Date: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), Revenue: 100000, Expenses: 60000},
		{Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), Revenue: 110000, Expenses: 65000},
	}

	deriver := mocks.NewMockDeriver(ctrl)
	deriver.EXPECT().RevenueWindow(session.Current()).Return(window)

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/revenue-trend", nil)
	rec := httptest.NewRecorder()

	GetRevenueTrendChart(session, deriver).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var chart charting.TimeSeriesChart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	assert.Equal(t, 820, chart.Width)
	assert.Equal(t, 320, chart.Height)
	assert.NotEmpty(t, chart.RevenuePath)
	assert.NotEmpty(t, chart.ValueTicks)
	require.NotNil(t, chart.LastRevenue)
}

func TestGetProductBarChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver := mocks.NewMockDeriver(ctrl)
	deriver.EXPECT().ProductPerformance().Return([]domain.ProductPerformance{
		{Product: "Analytics Suite", Revenue: 48200, Growth: 12.4},
		{Product: "Data Pipeline", Revenue: 31800, Growth: -3.1},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/product-performance", nil)
	rec := httptest.NewRecorder()

	GetProductBarChart(deriver).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var chart charting.BarChart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	assert.Equal(t, 360, chart.Width)
	require.Len(t, chart.Bars, 2)
	assert.Equal(t, "Analytics Suite", chart.Bars[0].Product)
}

func TestGetChannelDonutChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver := mocks.NewMockDeriver(ctrl)
	deriver.EXPECT().ChannelSplit().Return([]domain.ChannelSplit{
		{Channel: "Direct Sales", Value: 38},
		{Channel: "Partner Network", Value: 26},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/channel-split", nil)
	rec := httptest.NewRecorder()

	GetChannelDonutChart(deriver).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var chart charting.DonutChart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	assert.Equal(t, 260, chart.Size)
	require.Len(t, chart.Sectors, 2)
	assert.InDelta(t, 136.8, chart.Sectors[0].EndAngle, 1e-9)
}
