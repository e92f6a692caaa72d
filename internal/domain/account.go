package domain

import "time"

// AccountStatus representa a saúde de uma conta na carteira
type AccountStatus string

const (
	AccountStatusOnTrack AccountStatus = "on-track"
	AccountStatusAtRisk  AccountStatus = "at-risk"
	AccountStatusBlocked AccountStatus = "blocked"
)

// Account representa uma conta da carteira comercial
type Account struct {
	ID        string        `json:"id"`
	Company   string        `json:"company"`
	Owner     string        `json:"owner"`
	Status    AccountStatus `json:"status"`
	MRR       float64       `json:"mrr"`
	Change    float64       `json:"change"`
	Industry  string        `json:"industry"`
	LastTouch time.Time     `json:"lastTouch"`
}

// StatusTally contabiliza as contas por status. Os três status sempre
// aparecem na resposta, mesmo quando zerados.
type StatusTally struct {
	OnTrack int `json:"on-track"`
	AtRisk  int `json:"at-risk"`
	Blocked int `json:"blocked"`
}

// Total retorna a soma das três contagens
func (t StatusTally) Total() int {
	return t.OnTrack + t.AtRisk + t.Blocked
}

// AccountSummary agrega a carteira filtrada: soma de MRR, média da
// variação percentual e contagem por status
type AccountSummary struct {
	TotalMRR    float64     `json:"totalMrr"`
	AvgChange   float64     `json:"avgChange"`
	StatusTally StatusTally `json:"statusTally"`
}
