package domain

import (
	"fmt"
	"strings"
)

// TimeRange representa a janela de meses selecionada no dashboard
type TimeRange string

const (
	TimeRange3Months  TimeRange = "3m"
	TimeRange6Months  TimeRange = "6m"
	TimeRange12Months TimeRange = "12m"
)

// monthsByRange mapeia cada janela para a quantidade de meses correspondente
var monthsByRange = map[TimeRange]int{
	TimeRange3Months:  3,
	TimeRange6Months:  6,
	TimeRange12Months: 12,
}

// Months retorna a quantidade de meses coberta pela janela
func (t TimeRange) Months() int {
	return monthsByRange[t]
}

// ParseTimeRange valida e converte o valor recebido da camada de apresentação
func ParseTimeRange(value string) (TimeRange, error) {
	tr := TimeRange(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := monthsByRange[tr]; !ok {
		return "", fmt.Errorf("período inválido: %q (esperado 3m, 6m ou 12m)", value)
	}
	return tr, nil
}

// StatusFilter representa o filtro de status aplicado à carteira de contas
type StatusFilter string

const (
	StatusFilterAll     StatusFilter = "all"
	StatusFilterOnTrack StatusFilter = StatusFilter(AccountStatusOnTrack)
	StatusFilterAtRisk  StatusFilter = StatusFilter(AccountStatusAtRisk)
	StatusFilterBlocked StatusFilter = StatusFilter(AccountStatusBlocked)
)

// ParseStatusFilter valida e converte o valor recebido da camada de apresentação
func ParseStatusFilter(value string) (StatusFilter, error) {
	switch sf := StatusFilter(strings.ToLower(strings.TrimSpace(value))); sf {
	case StatusFilterAll, StatusFilterOnTrack, StatusFilterAtRisk, StatusFilterBlocked:
		return sf, nil
	default:
		return "", fmt.Errorf("status inválido: %q", value)
	}
}

// Filters é o estado de filtros da sessão do dashboard. O struct é
// comparável por valor e serve diretamente como chave de memoização.
type Filters struct {
	SearchTerm string       `json:"searchTerm"`
	Status     StatusFilter `json:"status"`
	TimeRange  TimeRange    `json:"timeRange"`
}

// DefaultFilters retorna o estado inicial da sessão
func DefaultFilters() Filters {
	return Filters{
		SearchTerm: "",
		Status:     StatusFilterAll,
		TimeRange:  TimeRange6Months,
	}
}

// NormalizedSearch retorna o termo de busca preparado para comparação
// (sem espaços nas bordas e em minúsculas)
func (f Filters) NormalizedSearch() string {
	return strings.ToLower(strings.TrimSpace(f.SearchTerm))
}
