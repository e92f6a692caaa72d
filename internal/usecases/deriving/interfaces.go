package deriving

import (
	"github.com/vortexbi/revenue-dashboard-api/internal/domain"
)

// RecordStore define o acesso somente leitura ao corpo estático de
// registros do dashboard
type RecordStore interface {
	// Version identifica o conteúdo do corpus carregado
	Version() string

	// RevenueTrend retorna a série mensal completa em ordem cronológica
	RevenueTrend() []domain.RevenuePoint

	// AccountPipeline retorna a carteira de contas completa
	AccountPipeline() []domain.Account

	// ProductPerformance retorna o desempenho por produto
	ProductPerformance() []domain.ProductPerformance

	// ChannelSplit retorna a participação por canal
	ChannelSplit() []domain.ChannelSplit

	// ActivityFeed retorna os eventos do mais recente para o mais antigo
	ActivityFeed() []domain.ActivityEvent

	// GoalsProgress retorna o avanço das metas
	GoalsProgress() []domain.GoalProgress
}

// Deriver define as visões derivadas do dashboard. Todas as operações
// são funções puras de (corpus, filtros): entradas iguais por valor
// produzem saídas iguais por valor.
type Deriver interface {
	// RevenueWindow retorna os últimos N meses da série de receita,
	// conforme a janela de tempo dos filtros
	RevenueWindow(filters domain.Filters) []domain.RevenuePoint

	// FilterAccounts retorna a carteira filtrada por status e busca
	FilterAccounts(filters domain.Filters) []domain.Account

	// AccountSummary agrega a carteira filtrada
	AccountSummary(filters domain.Filters) domain.AccountSummary

	// HeadlineMetrics calcula as métricas de destaque da janela atual
	HeadlineMetrics(filters domain.Filters) domain.HeadlineMetrics

	// ProductPerformance retorna o desempenho por produto para os gráficos
	ProductPerformance() []domain.ProductPerformance

	// ChannelSplit retorna a participação por canal para os gráficos
	ChannelSplit() []domain.ChannelSplit

	// ActivityFeed retorna o feed de atividades do time
	ActivityFeed() []domain.ActivityEvent

	// GoalsProgress retorna o avanço das metas do trimestre
	GoalsProgress() []domain.GoalProgress
}
