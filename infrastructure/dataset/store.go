package dataset

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed corpus.json
var corpusJSON []byte

// Estruturas intermediárias para decodificar o corpus embutido. As
// datas da série de receita vêm no formato YYYY-MM-DD e precisam de
// conversão manual.
type corpus struct {
	RevenueTrend []struct {
		Date         string  `json:"date"`
		Revenue      float64 `json:"revenue"`
		Expenses     float64 `json:"expenses"`
		NewCustomers int     `json:"newCustomers"`
	} `json:"revenueTrend"`
	ProductPerformance []domain.ProductPerformance `json:"productPerformance"`
	ChannelSplit       []domain.ChannelSplit       `json:"channelSplit"`
	AccountPipeline    []domain.Account            `json:"accountPipeline"`
	ActivityFeed       []domain.ActivityEvent      `json:"activityFeed"`
	GoalsProgress      []domain.GoalProgress       `json:"goalsProgress"`
}

// Store é o corpo estático de registros do dashboard. Carregado uma
// única vez na inicialização e compartilhado somente para leitura.
type Store struct {
	version  string
	revenue  []domain.RevenuePoint
	products []domain.ProductPerformance
	channels []domain.ChannelSplit
	accounts []domain.Account
	activity []domain.ActivityEvent
	goals    []domain.GoalProgress
}

// Load decodifica o corpus embutido e valida as invariantes dos
// registros. Qualquer violação interrompe a inicialização da aplicação.
func Load() (*Store, error) {
	var c corpus
	if err := json.Unmarshal(corpusJSON, &c); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar o corpus embutido")
	}

	revenue := make([]domain.RevenuePoint, 0, len(c.RevenueTrend))
	for _, p := range c.RevenueTrend {
		date, err := time.Parse(time.DateOnly, p.Date)
		if err != nil {
			return nil, errors.Wrapf(err, "data inválida na série de receita: %q", p.Date)
		}
		revenue = append(revenue, domain.RevenuePoint{
			Date:         date,
			Revenue:      p.Revenue,
			Expenses:     p.Expenses,
			NewCustomers: p.NewCustomers,
		})
	}

	s := &Store{
		version:  corpusVersion(),
		revenue:  revenue,
		products: c.ProductPerformance,
		channels: c.ChannelSplit,
		accounts: c.AccountPipeline,
		activity: c.ActivityFeed,
		goals:    c.GoalsProgress,
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	// O feed é exibido do evento mais recente para o mais antigo
	sort.SliceStable(s.activity, func(i, j int) bool {
		return s.activity[i].Timestamp.After(s.activity[j].Timestamp)
	})

	return s, nil
}

// validate verifica as invariantes do corpus: série de receita em ordem
// cronológica, um ponto por mês sem lacunas, IDs de conta únicos e
// metas com alvo positivo
func (s *Store) validate() error {
	for i := 1; i < len(s.revenue); i++ {
		prev, curr := s.revenue[i-1].Date, s.revenue[i].Date
		if !curr.After(prev) {
			return errors.Errorf("série de receita fora de ordem cronológica em %s", curr.Format(time.DateOnly))
		}
		if expected := prev.AddDate(0, 1, 0); !curr.Equal(expected) {
			return errors.Errorf("lacuna na série de receita entre %s e %s",
				prev.Format(time.DateOnly), curr.Format(time.DateOnly))
		}
	}

	seen := make(map[string]bool, len(s.accounts))
	for _, account := range s.accounts {
		if seen[account.ID] {
			return errors.Errorf("ID de conta duplicado no corpus: %s", account.ID)
		}
		seen[account.ID] = true

		if account.MRR < 0 {
			return errors.Errorf("MRR negativo na conta %s", account.ID)
		}
	}

	for _, goal := range s.goals {
		if goal.Target <= 0 {
			return errors.Errorf("meta %s com alvo não positivo", goal.ID)
		}
		if goal.Progress < 0 {
			return errors.Errorf("meta %s com progresso negativo", goal.ID)
		}
	}

	return nil
}

// corpusVersion deriva a versão do corpus a partir do conteúdo
// embutido. Entra na chave de memoização das derivações.
func corpusVersion() string {
	sum := sha256.Sum256(corpusJSON)
	return hex.EncodeToString(sum[:6])
}

// Version identifica o conteúdo do corpus carregado
func (s *Store) Version() string {
	return s.version
}

// RevenueTrend retorna a série mensal completa em ordem cronológica
func (s *Store) RevenueTrend() []domain.RevenuePoint {
	return clone(s.revenue)
}

// ProductPerformance retorna o desempenho por produto na ordem do corpus
func (s *Store) ProductPerformance() []domain.ProductPerformance {
	return clone(s.products)
}

// ChannelSplit retorna a participação por canal na ordem do corpus
func (s *Store) ChannelSplit() []domain.ChannelSplit {
	return clone(s.channels)
}

// AccountPipeline retorna a carteira de contas completa
func (s *Store) AccountPipeline() []domain.Account {
	return clone(s.accounts)
}

// ActivityFeed retorna os eventos do mais recente para o mais antigo
func (s *Store) ActivityFeed() []domain.ActivityEvent {
	return clone(s.activity)
}

// GoalsProgress retorna o avanço das metas do trimestre
func (s *Store) GoalsProgress() []domain.GoalProgress {
	return clone(s.goals)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
