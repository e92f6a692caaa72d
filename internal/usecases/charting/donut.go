package charting

import (
	"math"

	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

// Dimensões fixas do anel de participação por canal
const (
	donutSize   = 260
	donutRadius = donutSize / 2.0

	// Raio interno como fração do raio total
	donutInnerRatio = 0.58

	// Recuo do raio externo em relação à borda do canvas
	donutOuterPadding = 4

	donutCornerRadius = 12
)

// Sector é uma fatia angular do anel, em graus, no sentido horário a
// partir do topo
type Sector struct {
	Channel    string  `json:"channel"`
	Value      float64 `json:"value"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// DonutChart é a descrição geométrica do anel de canais. Total é a soma
// arredondada dos valores, exibida no centro do anel.
type DonutChart struct {
	Size         int     `json:"size"`
	InnerRadius  float64 `json:"innerRadius"`
	OuterRadius  float64 `json:"outerRadius"`
	CornerRadius float64 `json:"cornerRadius"`

	Sectors []Sector `json:"sectors"`
	Total   int      `json:"total"`
}

// BuildDonut converte a participação por canal em setores do anel, na
// ordem recebida, sem reordenar por valor, para cada canal manter a
// mesma posição entre leituras. O ângulo de cada setor é proporcional
// ao valor (value/100 de volta completa); se os valores não somarem
// 100, o anel não fecha por completo, e isso é aceito como aproximação
// de exibição.
func BuildDonut(data []domain.ChannelSplit) DonutChart {
	chart := DonutChart{
		Size:         donutSize,
		InnerRadius:  donutRadius * donutInnerRatio,
		OuterRadius:  donutRadius - donutOuterPadding,
		CornerRadius: donutCornerRadius,
		Sectors:      []Sector{},
	}

	total := 0.0
	angle := 0.0
	for _, d := range data {
		span := d.Value / 100 * 360
		chart.Sectors = append(chart.Sectors, Sector{
			Channel:    d.Channel,
			Value:      d.Value,
			StartAngle: angle,
			EndAngle:   angle + span,
		})
		angle += span
		total += d.Value
	}

	chart.Total = int(math.Round(total))
	return chart
}
