package charting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

func TestBuildTimeSeries(t *testing.T) {
	series := []domain.RevenuePoint{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Revenue: 80000, Expenses: 50000},
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Revenue: 100000, Expenses: 60000},
	}

	chart := BuildTimeSeries(series)

	assert.Equal(t, 820, chart.Width)
	assert.Equal(t, 320, chart.Height)
	assert.Equal(t, 64, chart.MarginLeft)
	assert.Equal(t, 48, chart.MarginBottom)

	// Domínio vertical: 100000 * 1.1 = 110000 arredondado para 120000
	require.NotEmpty(t, chart.ValueTicks)
	last := chart.ValueTicks[len(chart.ValueTicks)-1]
	assert.Equal(t, 120000.0, last.Value)
	assert.InDelta(t, 0, last.Y, 1e-9)

	// Passo de 20000 de 0 até o topo do domínio
	require.Len(t, chart.ValueTicks, 7)
	assert.Equal(t, 0.0, chart.ValueTicks[0].Value)
	assert.InDelta(t, 248, chart.ValueTicks[0].Y, 1e-9)
	assert.Equal(t, 20000.0, chart.ValueTicks[1].Value)

	// Seis marcações uniformes entre o primeiro e o último ponto
	require.Len(t, chart.TimeTicks, 6)
	assert.InDelta(t, 0, chart.TimeTicks[0].X, 1e-9)
	assert.InDelta(t, 724, chart.TimeTicks[5].X, 1e-9)
	assert.InDelta(t, 724.0/5, chart.TimeTicks[1].X, 1e-9)

	// Último ponto de cada série no plano do gráfico
	require.NotNil(t, chart.LastRevenue)
	require.NotNil(t, chart.LastExpense)
	assert.InDelta(t, 724, chart.LastRevenue.X, 1e-9)
	assert.InDelta(t, 248*(1-100000.0/120000.0), chart.LastRevenue.Y, 1e-6)
	assert.InDelta(t, 248*(1-60000.0/120000.0), chart.LastExpense.Y, 1e-6)

	// Caminhos partem do primeiro ponto projetado
	assert.True(t, strings.HasPrefix(chart.RevenuePath, "M0,82.67"))
	assert.True(t, strings.HasPrefix(chart.ExpensePath, "M0,144.67"))

	// A área fecha na linha de base, voltando ao primeiro X
	assert.True(t, strings.HasPrefix(chart.AreaPath, chart.RevenuePath))
	assert.True(t, strings.HasSuffix(chart.AreaPath, "L724,248L0,248Z"))
}

func TestBuildTimeSeries_Empty(t *testing.T) {
	chart := BuildTimeSeries(nil)

	assert.Equal(t, 820, chart.Width)
	assert.Equal(t, "", chart.AreaPath)
	assert.Equal(t, "", chart.RevenuePath)
	assert.Equal(t, "", chart.ExpensePath)
	assert.Empty(t, chart.TimeTicks)
	assert.Empty(t, chart.ValueTicks)
	assert.Nil(t, chart.LastRevenue)
	assert.Nil(t, chart.LastExpense)
}

func TestBuildTimeSeries_SinglePoint(t *testing.T) {
	series := []domain.RevenuePoint{
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Revenue: 100, Expenses: 50},
	}

	chart := BuildTimeSeries(series)

	// Domínio temporal degenerado produz uma única marcação
	require.Len(t, chart.TimeTicks, 1)
	assert.InDelta(t, 0, chart.TimeTicks[0].X, 1e-9)

	assert.Equal(t, "M0,41.33", chart.RevenuePath)
	require.NotNil(t, chart.LastRevenue)
	assert.InDelta(t, 0, chart.LastRevenue.X, 1e-9)
}

func TestBuildTimeSeries_FullCorpusDomain(t *testing.T) {
	// Pico de 134400 com folga de 10% arredonda o domínio para 160000,
	// com passo de 50000 entre as marcações
	series := make([]domain.RevenuePoint, 0, 12)
	for i := 0; i < 12; i++ {
		series = append(series, domain.RevenuePoint{
			Date:    time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Revenue: 90000 + float64(i)*800,
		})
	}
	series[len(series)-1].Revenue = 134400

	chart := BuildTimeSeries(series)

	require.Len(t, chart.ValueTicks, 4)
	assert.Equal(t, 0.0, chart.ValueTicks[0].Value)
	assert.Equal(t, 50000.0, chart.ValueTicks[1].Value)
	assert.Equal(t, 100000.0, chart.ValueTicks[2].Value)
	assert.Equal(t, 150000.0, chart.ValueTicks[3].Value)
}
