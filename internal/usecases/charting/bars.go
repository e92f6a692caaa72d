package charting

import (
	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

// Dimensões fixas do gráfico de barras por produto. A margem esquerda
// larga acomoda os rótulos dos produtos.
const (
	barChartWidth  = 360
	barChartHeight = 260

	barChartMarginTop    = 16
	barChartMarginRight  = 24
	barChartMarginBottom = 32
	barChartMarginLeft   = 160

	barChartPlotWidth  = barChartWidth - barChartMarginLeft - barChartMarginRight
	barChartPlotHeight = barChartHeight - barChartMarginTop - barChartMarginBottom

	// Folga de 5% à direita da barra mais longa
	barChartHeadroom = 1.05

	barPaddingInner = 0.3
	barPaddingOuter = 0.2
	barAlign        = 0.5
)

// Bar é o retângulo de um produto: posição e tamanho em pixels, mais os
// dados que a apresentação usa como rótulo
type Bar struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	CornerRadius float64 `json:"cornerRadius"`

	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
	Growth  float64 `json:"growth"`
}

// BarChart é a descrição geométrica do gráfico de desempenho por produto
type BarChart struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	MarginTop    int `json:"marginTop"`
	MarginRight  int `json:"marginRight"`
	MarginBottom int `json:"marginBottom"`
	MarginLeft   int `json:"marginLeft"`

	Bars []Bar `json:"bars"`
}

// BuildBars projeta o desempenho por produto em faixas horizontais, uma
// por produto na ordem recebida. Entrada vazia produz lista vazia e a
// apresentação exibe o aviso de ausência de dados.
func BuildBars(data []domain.ProductPerformance) BarChart {
	chart := BarChart{
		Width:        barChartWidth,
		Height:       barChartHeight,
		MarginTop:    barChartMarginTop,
		MarginRight:  barChartMarginRight,
		MarginBottom: barChartMarginBottom,
		MarginLeft:   barChartMarginLeft,
		Bars:         []Bar{},
	}

	if len(data) == 0 {
		return chart
	}

	maxRevenue := 0.0
	for _, d := range data {
		if d.Revenue > maxRevenue {
			maxRevenue = d.Revenue
		}
	}

	bands := newBandScale(len(data), 0, barChartPlotHeight, barPaddingInner, barPaddingOuter, barAlign)
	x := linearScale{
		d0: 0,
		d1: maxRevenue * barChartHeadroom,
		r0: 0,
		r1: barChartPlotWidth,
	}

	for i, d := range data {
		chart.Bars = append(chart.Bars, Bar{
			X:            0,
			Y:            bands.position(i),
			Width:        x.scale(d.Revenue),
			Height:       bands.bandwidth,
			CornerRadius: bands.bandwidth / 2,
			Product:      d.Product,
			Revenue:      d.Revenue,
			Growth:       d.Growth,
		})
	}

	return chart
}
