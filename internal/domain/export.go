package domain

import "time"

// ExportDocument é o relatório executivo pronto para download
type ExportDocument struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Body        []byte    `json:"-"`
	GeneratedAt time.Time `json:"generatedAt"`
}
