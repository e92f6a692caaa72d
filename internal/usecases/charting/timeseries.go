package charting

import (
	"fmt"
	"time"

	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

// Dimensões fixas do gráfico de tendência de receita
const (
	timeSeriesWidth  = 820
	timeSeriesHeight = 320

	timeSeriesMarginTop    = 24
	timeSeriesMarginRight  = 32
	timeSeriesMarginBottom = 48
	timeSeriesMarginLeft   = 64

	timeSeriesPlotWidth  = timeSeriesWidth - timeSeriesMarginLeft - timeSeriesMarginRight
	timeSeriesPlotHeight = timeSeriesHeight - timeSeriesMarginTop - timeSeriesMarginBottom

	// Folga de 10% acima do maior valor para o pico não encostar na borda
	timeSeriesHeadroom = 1.1

	// Tensão da suavização catmull-rom
	timeSeriesCurveAlpha = 0.6

	timeSeriesTimeTickCount  = 6
	timeSeriesValueTickCount = 5
)

// TimeTick é uma marcação do eixo temporal
type TimeTick struct {
	Time time.Time `json:"time"`
	X    float64   `json:"x"`
}

// ValueTick é uma marcação do eixo de valores
type ValueTick struct {
	Value float64 `json:"value"`
	Y     float64 `json:"y"`
}

// TimeSeriesChart é a descrição geométrica do gráfico de receita vs.
// despesa: caminhos SVG prontos para desenho, marcações dos eixos e a
// posição do último ponto de cada série
type TimeSeriesChart struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	MarginTop    int `json:"marginTop"`
	MarginRight  int `json:"marginRight"`
	MarginBottom int `json:"marginBottom"`
	MarginLeft   int `json:"marginLeft"`

	AreaPath    string `json:"areaPath"`
	RevenuePath string `json:"revenuePath"`
	ExpensePath string `json:"expensePath"`

	TimeTicks  []TimeTick  `json:"timeTicks"`
	ValueTicks []ValueTick `json:"valueTicks"`

	LastRevenue *Point `json:"lastRevenue"`
	LastExpense *Point `json:"lastExpense"`
}

// BuildTimeSeries projeta a janela de receita no plano do gráfico.
// Série vazia produz caminhos e marcações vazios, nunca erro.
func BuildTimeSeries(series []domain.RevenuePoint) TimeSeriesChart {
	chart := TimeSeriesChart{
		Width:        timeSeriesWidth,
		Height:       timeSeriesHeight,
		MarginTop:    timeSeriesMarginTop,
		MarginRight:  timeSeriesMarginRight,
		MarginBottom: timeSeriesMarginBottom,
		MarginLeft:   timeSeriesMarginLeft,
		TimeTicks:    []TimeTick{},
		ValueTicks:   []ValueTick{},
	}

	if len(series) == 0 {
		return chart
	}

	first := series[0]
	last := series[len(series)-1]

	x := timeScale{
		t0: first.Date,
		t1: last.Date,
		r0: 0,
		r1: timeSeriesPlotWidth,
	}

	maxValue := 0.0
	for _, p := range series {
		if p.Revenue > maxValue {
			maxValue = p.Revenue
		}
		if p.Expenses > maxValue {
			maxValue = p.Expenses
		}
	}

	domainMax := niceCeiling(maxValue*timeSeriesHeadroom, timeSeriesValueTickCount)
	y := linearScale{
		d0: 0,
		d1: domainMax,
		r0: timeSeriesPlotHeight,
		r1: 0,
	}

	revenuePts := make([]Point, len(series))
	expensePts := make([]Point, len(series))
	for i, p := range series {
		px := x.scale(p.Date)
		revenuePts[i] = Point{X: px, Y: y.scale(p.Revenue)}
		expensePts[i] = Point{X: px, Y: y.scale(p.Expenses)}
	}

	chart.RevenuePath = catmullRomPath(revenuePts, timeSeriesCurveAlpha)
	chart.ExpensePath = catmullRomPath(expensePts, timeSeriesCurveAlpha)

	// Área sob a curva de receita, fechada na linha de base (valor 0)
	chart.AreaPath = fmt.Sprintf("%sL%s,%sL%s,%sZ",
		chart.RevenuePath,
		coord(revenuePts[len(revenuePts)-1].X), coord(float64(timeSeriesPlotHeight)),
		coord(revenuePts[0].X), coord(float64(timeSeriesPlotHeight)),
	)

	chart.TimeTicks = buildTimeTicks(first.Date, last.Date, x)
	chart.ValueTicks = buildValueTicks(domainMax, y)

	chart.LastRevenue = &Point{X: x.scale(last.Date), Y: y.scale(last.Revenue)}
	chart.LastExpense = &Point{X: x.scale(last.Date), Y: y.scale(last.Expenses)}

	return chart
}

// buildTimeTicks distribui marcações uniformes entre o primeiro e o
// último ponto da série
func buildTimeTicks(start, end time.Time, x timeScale) []TimeTick {
	span := end.Sub(start)
	if span == 0 {
		return []TimeTick{{Time: start, X: x.scale(start)}}
	}

	ticks := make([]TimeTick, 0, timeSeriesTimeTickCount)
	for i := 0; i < timeSeriesTimeTickCount; i++ {
		t := start.Add(time.Duration(float64(span) * float64(i) / float64(timeSeriesTimeTickCount-1)))
		ticks = append(ticks, TimeTick{Time: t, X: x.scale(t)})
	}

	return ticks
}

// buildValueTicks gera marcações em limites redondos, de 0 até o topo
// do domínio
func buildValueTicks(domainMax float64, y linearScale) []ValueTick {
	if domainMax <= 0 {
		return []ValueTick{{Value: 0, Y: y.scale(0)}}
	}

	step := tickStep(0, domainMax, timeSeriesValueTickCount)
	ticks := make([]ValueTick, 0, timeSeriesValueTickCount+1)
	for v := 0.0; v <= domainMax+step/2; v += step {
		ticks = append(ticks, ValueTick{Value: v, Y: y.scale(v)})
	}

	return ticks
}
