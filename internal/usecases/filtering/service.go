package filtering

import (
	"sync"

	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

// Session define as transições de estado dos filtros do dashboard.
// Cada intenção substitui exatamente um campo (ou todos, no Reset).
type Session interface {
	Current() domain.Filters
	SetSearchTerm(term string)
	SetStatus(status domain.StatusFilter)
	SetTimeRange(timeRange domain.TimeRange)
	Reset()
}

// Service guarda o único estado mutável da aplicação: os filtros da
// sessão. A troca de cada campo é atômica sob o mutex, então nenhuma
// derivação observa um estado parcialmente atualizado.
type Service struct {
	mu      sync.RWMutex
	filters domain.Filters
}

// NewService cria a sessão com os filtros padrão
func NewService() *Service {
	return &Service{filters: domain.DefaultFilters()}
}

// Current retorna o valor atual dos filtros
func (s *Service) Current() domain.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetSearchTerm substitui o termo de busca livre
func (s *Service) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchTerm = term
}

// SetStatus substitui o filtro de status da carteira
func (s *Service) SetStatus(status domain.StatusFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Status = status
}

// SetTimeRange substitui a janela de tempo da série de receita
func (s *Service) SetTimeRange(timeRange domain.TimeRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.TimeRange = timeRange
}

// Reset restaura todos os filtros para o estado inicial da sessão
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = domain.DefaultFilters()
}
