package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vortexbi/revenue-dashboard-api/infrastructure/dataset"
	"github.com/vortexbi/revenue-dashboard-api/internal/api"
	"github.com/vortexbi/revenue-dashboard-api/internal/config"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/deriving"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/exporting"
	"github.com/vortexbi/revenue-dashboard-api/internal/usecases/filtering"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Carrega o corpus estático de registros do dashboard
	store, err := dataset.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o corpus de registros")
	}
	logrus.WithField("version", store.Version()).Info("Corpus de registros carregado com sucesso")

	// A sessão é a única dona do estado de filtros
	session := filtering.NewService()

	// Motor de derivação com memoização sobre o corpus imutável
	derivationService := deriving.NewService(store).WithCache()

	exportService := exporting.NewService(cfg)

	server, err := api.New(
		cfg,
		session,
		derivationService,
		exportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
