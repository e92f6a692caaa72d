package charting

import (
	"math"
	"time"
)

// Point é uma coordenada em pixels no plano do gráfico
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// linearScale mapeia um domínio contínuo [d0, d1] para um intervalo de
// pixels [r0, r1]. Intervalo invertido (r0 > r1) produz o eixo vertical
// usual, com valores maiores mais próximos do topo.
type linearScale struct {
	d0, d1 float64
	r0, r1 float64
}

func (s linearScale) scale(v float64) float64 {
	if s.d1 == s.d0 {
		return s.r0
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// timeScale mapeia um domínio temporal para um intervalo de pixels
type timeScale struct {
	t0, t1 time.Time
	r0, r1 float64
}

func (s timeScale) scale(t time.Time) float64 {
	span := s.t1.Sub(s.t0)
	if span == 0 {
		return s.r0
	}
	return s.r0 + float64(t.Sub(s.t0))/float64(span)*(s.r1-s.r0)
}

// tickStep calcula um passo "redondo" (potência de 10 vezes 1, 2 ou 5)
// que divide o domínio em aproximadamente count intervalos
func tickStep(start, stop float64, count int) float64 {
	if stop <= start || count <= 0 {
		return 0
	}

	raw := (stop - start) / float64(count)
	power := math.Floor(math.Log10(raw))
	base := math.Pow(10, power)

	switch err := raw / base; {
	case err >= math.Sqrt(50):
		return base * 10
	case err >= math.Sqrt(10):
		return base * 5
	case err >= math.Sqrt2:
		return base * 2
	default:
		return base
	}
}

// niceCeiling arredonda o limite do domínio para cima, para o próximo
// múltiplo do passo calculado por tickStep
func niceCeiling(max float64, count int) float64 {
	step := tickStep(0, max, count)
	if step <= 0 {
		return max
	}
	return math.Ceil(max/step) * step
}

// bandScale distribui n categorias em faixas de largura fixa, com
// espaçamento interno entre faixas e externo nas bordas, ambos como
// frações do passo
type bandScale struct {
	start     float64
	step      float64
	bandwidth float64
}

func newBandScale(n int, r0, r1, paddingInner, paddingOuter, align float64) bandScale {
	if n == 0 {
		return bandScale{}
	}

	step := (r1 - r0) / math.Max(1, float64(n)-paddingInner+paddingOuter*2)
	return bandScale{
		start:     r0 + (r1-r0-step*(float64(n)-paddingInner))*align,
		step:      step,
		bandwidth: step * (1 - paddingInner),
	}
}

// position retorna a borda inicial da i-ésima faixa
func (b bandScale) position(i int) float64 {
	return b.start + b.step*float64(i)
}
