package exporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Campo simples sai sem alteração",
			input:    "Atlas Robotics",
			expected: "Atlas Robotics",
		},
		{
			name:     "Vírgula exige aspas",
			input:    "Northwind, Inc.",
			expected: `"Northwind, Inc."`,
		},
		{
			name:     "Aspas internas são duplicadas",
			input:    `She said "yes"`,
			expected: `"She said ""yes"""`,
		},
		{
			name:     "Quebra de linha exige aspas",
			input:    "linha um\nlinha dois",
			expected: "\"linha um\nlinha dois\"",
		},
		{
			name:     "Retorno de carro exige aspas",
			input:    "linha um\r",
			expected: "\"linha um\r\"",
		},
		{
			name:     "Campo vazio permanece vazio",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeField(tt.input))
		})
	}
}

func TestRowWriter(t *testing.T) {
	w := &rowWriter{}

	w.Row("Metric", "Value")
	w.Row("Recurring revenue", "$134,400")
	w.Blank()
	w.Row("fim")

	expected := "Metric,Value\n" +
		`Recurring revenue,"$134,400"` + "\n" +
		"\n" +
		"fim"
	assert.Equal(t, expected, w.String())
}
