package exporting

import "strings"

// escapeField aplica a regra de citação do documento: o campo é envolto
// em aspas duplas se e somente se contiver aspas, vírgula ou quebra de
// linha, com aspas internas duplicadas. Qualquer outro campo sai sem
// alteração. A regra precisa ser exata para o arquivo abrir correto em
// planilhas.
func escapeField(field string) string {
	if !strings.ContainsAny(field, "\",\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// rowWriter acumula as linhas do relatório
type rowWriter struct {
	lines []string
}

// Row adiciona uma linha com os campos escapados e separados por vírgula
func (w *rowWriter) Row(fields ...string) {
	escaped := make([]string, len(fields))
	for i, field := range fields {
		escaped[i] = escapeField(field)
	}
	w.lines = append(w.lines, strings.Join(escaped, ","))
}

// Blank adiciona uma linha vazia separando seções
func (w *rowWriter) Blank() {
	w.lines = append(w.lines, "")
}

// String junta as linhas do documento com quebras de linha
func (w *rowWriter) String() string {
	return strings.Join(w.lines, "\n")
}
