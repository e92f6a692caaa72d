package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		latest   float64
		previous float64
		expected float64
	}{
		{
			name:     "Crescimento positivo",
			latest:   110,
			previous: 100,
			expected: 10,
		},
		{
			name:     "Queda",
			latest:   90,
			previous: 100,
			expected: -10,
		},
		{
			name:     "Sem variação",
			latest:   100,
			previous: 100,
			expected: 0,
		},
		{
			name:     "Baseline zero deve retornar 0, nunca dividir por zero",
			latest:   100,
			previous: 0,
			expected: 0,
		},
		{
			name:     "Ambos zero",
			latest:   0,
			previous: 0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GrowthRate(tt.latest, tt.previous), 1e-9)
		})
	}
}

func TestGoalProgressPercent(t *testing.T) {
	tests := []struct {
		name     string
		goal     GoalProgress
		expected float64
	}{
		{
			name:     "Avanço parcial",
			goal:     GoalProgress{Progress: 128, Target: 160},
			expected: 80,
		},
		{
			name:     "Progresso acima do alvo é limitado a 100",
			goal:     GoalProgress{Progress: 200, Target: 160},
			expected: 100,
		},
		{
			name:     "Alvo zero retorna 0",
			goal:     GoalProgress{Progress: 50, Target: 0},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.goal.Percent(), 1e-9)
		})
	}
}
