package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TimeRange
		hasError bool
	}{
		{
			name:     "Janela de 3 meses",
			input:    "3m",
			expected: TimeRange3Months,
		},
		{
			name:     "Janela de 6 meses",
			input:    "6m",
			expected: TimeRange6Months,
		},
		{
			name:     "Janela de 12 meses",
			input:    "12m",
			expected: TimeRange12Months,
		},
		{
			name:     "Aceita maiúsculas e espaços nas bordas",
			input:    " 6M ",
			expected: TimeRange6Months,
		},
		{
			name:     "Janela desconhecida deve retornar erro",
			input:    "24m",
			hasError: true,
		},
		{
			name:     "Valor vazio deve retornar erro",
			input:    "",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimeRange(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTimeRangeMonths(t *testing.T) {
	assert.Equal(t, 3, TimeRange3Months.Months())
	assert.Equal(t, 6, TimeRange6Months.Months())
	assert.Equal(t, 12, TimeRange12Months.Months())
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StatusFilter
		hasError bool
	}{
		{
			name:     "Todos os status",
			input:    "all",
			expected: StatusFilterAll,
		},
		{
			name:     "Contas saudáveis",
			input:    "on-track",
			expected: StatusFilterOnTrack,
		},
		{
			name:     "Contas em risco",
			input:    "at-risk",
			expected: StatusFilterAtRisk,
		},
		{
			name:     "Contas bloqueadas",
			input:    "blocked",
			expected: StatusFilterBlocked,
		},
		{
			name:     "Status desconhecido deve retornar erro",
			input:    "churned",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseStatusFilter(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultFilters(t *testing.T) {
	filters := DefaultFilters()

	assert.Equal(t, "", filters.SearchTerm)
	assert.Equal(t, StatusFilterAll, filters.Status)
	assert.Equal(t, TimeRange6Months, filters.TimeRange)
}

func TestNormalizedSearch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Remove espaços e converte para minúsculas",
			input:    "  Atlas Robotics ",
			expected: "atlas robotics",
		},
		{
			name:     "Termo vazio permanece vazio",
			input:    "",
			expected: "",
		},
		{
			name:     "Somente espaços vira vazio",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := Filters{SearchTerm: tt.input}
			assert.Equal(t, tt.expected, filters.NormalizedSearch())
		})
	}
}
