package domain

import "time"

// ActivityType classifica um evento do feed de atividades
type ActivityType string

const (
	ActivityTypeDeal    ActivityType = "deal"
	ActivityTypeSupport ActivityType = "support"
	ActivityTypeProduct ActivityType = "product"
	ActivityTypeFinance ActivityType = "finance"
)

// ActivityEvent representa um evento do feed de atividades do time
type ActivityEvent struct {
	ID        string       `json:"id"`
	Event     string       `json:"event"`
	Actor     string       `json:"actor"`
	Timestamp time.Time    `json:"timestamp"`
	Type      ActivityType `json:"type"`
}

// GoalProgress representa o avanço de uma meta do trimestre
type GoalProgress struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Progress float64 `json:"progress"`
	Target   float64 `json:"target"`
}

// Percent retorna o avanço em relação à meta, limitado a 100% para
// exibição (o progresso bruto pode ultrapassar o alvo)
func (g GoalProgress) Percent() float64 {
	if g.Target <= 0 {
		return 0
	}
	pct := g.Progress / g.Target * 100
	if pct > 100 {
		return 100
	}
	return pct
}
