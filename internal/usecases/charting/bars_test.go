package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

func TestBuildBars(t *testing.T) {
	data := []domain.ProductPerformance{
		{Product: "Analytics Suite", Revenue: 100, Growth: 12.4},
		{Product: "Data Pipeline", Revenue: 50, Growth: -3.1},
	}

	chart := BuildBars(data)

	assert.Equal(t, 360, chart.Width)
	assert.Equal(t, 260, chart.Height)
	assert.Equal(t, 160, chart.MarginLeft)
	require.Len(t, chart.Bars, 2)

	// Duas faixas em 212px: passo 212/2.1, largura da faixa 70% do passo
	step := 212.0 / 2.1
	bandwidth := step * 0.7

	first := chart.Bars[0]
	assert.Equal(t, "Analytics Suite", first.Product)
	assert.Equal(t, 100.0, first.Revenue)
	assert.Equal(t, 12.4, first.Growth)
	assert.Equal(t, 0.0, first.X)
	assert.InDelta(t, (212-step*1.7)/2, first.Y, 1e-9)
	assert.InDelta(t, bandwidth, first.Height, 1e-9)
	assert.InDelta(t, bandwidth/2, first.CornerRadius, 1e-9)

	// A barra mais longa ocupa o plano menos a folga de 5%
	assert.InDelta(t, 100.0/105.0*176.0, first.Width, 1e-9)

	second := chart.Bars[1]
	assert.InDelta(t, first.Y+step, second.Y, 1e-9)
	assert.InDelta(t, 50.0/105.0*176.0, second.Width, 1e-9)

	// Barras na ordem recebida, sem reordenação por receita
	assert.Equal(t, "Data Pipeline", second.Product)
}

func TestBuildBars_Empty(t *testing.T) {
	chart := BuildBars(nil)

	assert.Equal(t, 360, chart.Width)
	assert.Empty(t, chart.Bars)
	assert.NotNil(t, chart.Bars)
}
