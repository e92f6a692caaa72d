package deriving

import (
	"strings"
	"sync"

	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

// Service implementa a interface Deriver sobre o corpus estático
type Service struct {
	store RecordStore
	cache *derivationCache
}

// derivationCache memoiza as derivações por valor dos filtros. O corpus
// é imutável durante a vida do processo, então a versão é fixada na
// criação e o cache nunca precisa ser invalidado.
type derivationCache struct {
	mu        sync.RWMutex
	version   string
	windows   map[domain.Filters][]domain.RevenuePoint
	accounts  map[domain.Filters][]domain.Account
	summaries map[domain.Filters]domain.AccountSummary
	headlines map[domain.Filters]domain.HeadlineMetrics
}

// NewService cria o motor de derivação sem memoização
func NewService(store RecordStore) *Service {
	return &Service{store: store}
}

// WithCache habilita a memoização das derivações, chaveada pelo valor
// dos filtros e pela versão do corpus
func (s *Service) WithCache() *Service {
	s.cache = &derivationCache{
		version:   s.store.Version(),
		windows:   make(map[domain.Filters][]domain.RevenuePoint),
		accounts:  make(map[domain.Filters][]domain.Account),
		summaries: make(map[domain.Filters]domain.AccountSummary),
		headlines: make(map[domain.Filters]domain.HeadlineMetrics),
	}
	return s
}

// RevenueWindow retorna os últimos N meses da série, onde N vem da
// janela de tempo ativa. Com menos pontos do que N, retorna todos os
// disponíveis sem preenchimento.
func (s *Service) RevenueWindow(filters domain.Filters) []domain.RevenuePoint {
	if s.cache != nil {
		s.cache.mu.RLock()
		cached, ok := s.cache.windows[filters]
		s.cache.mu.RUnlock()
		if ok {
			return cached
		}
	}

	trend := s.store.RevenueTrend()
	months := filters.TimeRange.Months()
	if months > len(trend) {
		months = len(trend)
	}
	window := trend[len(trend)-months:]

	if s.cache != nil {
		s.cache.mu.Lock()
		s.cache.windows[filters] = window
		s.cache.mu.Unlock()
	}

	return window
}

// FilterAccounts aplica o filtro de status e a busca textual sobre a
// carteira. A busca compara substrings, sem tokenização, contra o nome
// da empresa e o responsável.
func (s *Service) FilterAccounts(filters domain.Filters) []domain.Account {
	if s.cache != nil {
		s.cache.mu.RLock()
		cached, ok := s.cache.accounts[filters]
		s.cache.mu.RUnlock()
		if ok {
			return cached
		}
	}

	search := filters.NormalizedSearch()
	filtered := make([]domain.Account, 0)

	for _, account := range s.store.AccountPipeline() {
		matchesStatus := filters.Status == domain.StatusFilterAll ||
			string(account.Status) == string(filters.Status)

		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(account.Company), search) ||
			strings.Contains(strings.ToLower(account.Owner), search)

		if matchesStatus && matchesSearch {
			filtered = append(filtered, account)
		}
	}

	if s.cache != nil {
		s.cache.mu.Lock()
		s.cache.accounts[filters] = filtered
		s.cache.mu.Unlock()
	}

	return filtered
}

// AccountSummary agrega a carteira filtrada: soma de MRR, média da
// variação (0 para carteira vazia) e contagem por status
func (s *Service) AccountSummary(filters domain.Filters) domain.AccountSummary {
	if s.cache != nil {
		s.cache.mu.RLock()
		cached, ok := s.cache.summaries[filters]
		s.cache.mu.RUnlock()
		if ok {
			return cached
		}
	}

	accounts := s.FilterAccounts(filters)

	summary := domain.AccountSummary{}
	changeSum := 0.0

	for _, account := range accounts {
		summary.TotalMRR += account.MRR
		changeSum += account.Change

		switch account.Status {
		case domain.AccountStatusOnTrack:
			summary.StatusTally.OnTrack++
		case domain.AccountStatusAtRisk:
			summary.StatusTally.AtRisk++
		case domain.AccountStatusBlocked:
			summary.StatusTally.Blocked++
		}
	}

	// Média definida como 0 para carteira vazia, nunca NaN
	if len(accounts) > 0 {
		summary.AvgChange = changeSum / float64(len(accounts))
	}

	if s.cache != nil {
		s.cache.mu.Lock()
		s.cache.summaries[filters] = summary
		s.cache.mu.Unlock()
	}

	return summary
}

// HeadlineMetrics calcula as métricas de destaque sobre a janela de
// receita atual: valores do mês mais recente e crescimento sobre o mês
// anterior. Janela com um único ponto implica crescimento 0; janela
// vazia zera todos os campos.
func (s *Service) HeadlineMetrics(filters domain.Filters) domain.HeadlineMetrics {
	if s.cache != nil {
		s.cache.mu.RLock()
		cached, ok := s.cache.headlines[filters]
		s.cache.mu.RUnlock()
		if ok {
			return cached
		}
	}

	window := s.RevenueWindow(filters)

	metrics := domain.HeadlineMetrics{}
	if len(window) > 0 {
		latest := window[len(window)-1]
		previous := latest
		if len(window) > 1 {
			previous = window[len(window)-2]
		}

		metrics = domain.HeadlineMetrics{
			Revenue:        latest.Revenue,
			Expenses:       latest.Expenses,
			NewCustomers:   latest.NewCustomers,
			RevenueGrowth:  domain.GrowthRate(latest.Revenue, previous.Revenue),
			ExpenseGrowth:  domain.GrowthRate(latest.Expenses, previous.Expenses),
			CustomerGrowth: domain.GrowthRate(float64(latest.NewCustomers), float64(previous.NewCustomers)),
		}
	}

	if s.cache != nil {
		s.cache.mu.Lock()
		s.cache.headlines[filters] = metrics
		s.cache.mu.Unlock()
	}

	return metrics
}

// ProductPerformance repassa o desempenho por produto na ordem do corpus
func (s *Service) ProductPerformance() []domain.ProductPerformance {
	return s.store.ProductPerformance()
}

// ChannelSplit repassa a participação por canal na ordem do corpus
func (s *Service) ChannelSplit() []domain.ChannelSplit {
	return s.store.ChannelSplit()
}

// ActivityFeed repassa o feed de atividades já ordenado
func (s *Service) ActivityFeed() []domain.ActivityEvent {
	return s.store.ActivityFeed()
}

// GoalsProgress repassa o avanço das metas
func (s *Service) GoalsProgress() []domain.GoalProgress {
	return s.store.GoalsProgress()
}
