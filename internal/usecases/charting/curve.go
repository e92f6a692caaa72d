package charting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const curveEpsilon = 1e-12

// catmullRomPath gera o atributo "d" de um caminho SVG suavizado por
// interpolação catmull-rom parametrizada por alpha, convertendo cada
// segmento em uma curva de Bézier cúbica. Com alpha entre 0 e 1 a curva
// passa por todos os pontos sem laços nem cúspides.
func catmullRomPath(points []Point, alpha float64) string {
	if len(points) == 0 {
		return ""
	}

	var path strings.Builder
	path.WriteString("M")
	path.WriteString(coord(points[0].X))
	path.WriteString(",")
	path.WriteString(coord(points[0].Y))

	for i := 0; i < len(points)-1; i++ {
		p0 := points[maxInt(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[minInt(i+2, len(points)-1)]

		c1, c2 := bezierControls(p0, p1, p2, p3, alpha)
		fmt.Fprintf(&path, "C%s,%s,%s,%s,%s,%s",
			coord(c1.X), coord(c1.Y),
			coord(c2.X), coord(c2.Y),
			coord(p2.X), coord(p2.Y),
		)
	}

	return path.String()
}

// bezierControls calcula os pontos de controle da Bézier equivalente ao
// segmento catmull-rom p1→p2, usando p0 e p3 como vizinhos. Segmentos
// degenerados (vizinho coincidente) mantêm o controle sobre o próprio
// ponto.
func bezierControls(p0, p1, p2, p3 Point, alpha float64) (Point, Point) {
	l01x2a := math.Pow(dist2(p0, p1), alpha)
	l12x2a := math.Pow(dist2(p1, p2), alpha)
	l23x2a := math.Pow(dist2(p2, p3), alpha)
	l01a := math.Sqrt(l01x2a)
	l12a := math.Sqrt(l12x2a)
	l23a := math.Sqrt(l23x2a)

	c1 := p1
	if l01a > curveEpsilon {
		a := 2*l01x2a + 3*l01a*l12a + l12x2a
		n := 3 * l01a * (l01a + l12a)
		c1 = Point{
			X: (p1.X*a - p0.X*l12x2a + p2.X*l01x2a) / n,
			Y: (p1.Y*a - p0.Y*l12x2a + p2.Y*l01x2a) / n,
		}
	}

	c2 := p2
	if l23a > curveEpsilon {
		b := 2*l23x2a + 3*l23a*l12a + l12x2a
		m := 3 * l23a * (l23a + l12a)
		c2 = Point{
			X: (p2.X*b + p1.X*l23x2a - p3.X*l12x2a) / m,
			Y: (p2.Y*b + p1.Y*l23x2a - p3.Y*l12x2a) / m,
		}
	}

	return c1, c2
}

func dist2(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// coord formata uma coordenada com duas casas decimais, sem zeros à
// direita, mantendo o caminho compacto e estável entre execuções
func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
