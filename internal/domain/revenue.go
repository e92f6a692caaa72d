package domain

import "time"

// RevenuePoint representa um mês fechado da série de receita
type RevenuePoint struct {
	Date         time.Time `json:"date"`
	Revenue      float64   `json:"revenue"`
	Expenses     float64   `json:"expenses"`
	NewCustomers int       `json:"newCustomers"`
}

// HeadlineMetrics são as métricas de destaque do dashboard: valores do
// mês mais recente da janela e crescimento percentual sobre o mês
// anterior
type HeadlineMetrics struct {
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	NewCustomers   int     `json:"newCustomers"`
	RevenueGrowth  float64 `json:"revenueGrowth"`
	ExpenseGrowth  float64 `json:"expenseGrowth"`
	CustomerGrowth float64 `json:"customerGrowth"`
}

// GrowthRate calcula o crescimento percentual entre dois valores.
// Sem baseline (previous == 0) o crescimento é definido como 0 para
// evitar divisão por zero.
func GrowthRate(latest, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (latest - previous) / previous * 100
}
