package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	kafkabroker "github.com/jtclarkjr/logboard/internal/broker/kafka"
	"github.com/jtclarkjr/logboard/internal/config"
	v1 "github.com/jtclarkjr/logboard/internal/controller/http/v1"
	"github.com/jtclarkjr/logboard/internal/metrics"
	"github.com/jtclarkjr/logboard/internal/repo"
	"github.com/jtclarkjr/logboard/internal/service"
	errorsUtils "github.com/jtclarkjr/logboard/pkg/errors"
	"github.com/jtclarkjr/logboard/pkg/httpserver"
	"github.com/jtclarkjr/logboard/pkg/logger"
	"github.com/jtclarkjr/logboard/pkg/postgres"
	"github.com/labstack/echo/v4"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Transaction manager
	trManager := manager.Must(trmpgx.NewDefaultFactory(pg.Pool))

	// Producer
	brokerProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer brokerProducer.Close()

	// Services
	metricsCnt := metrics.New()
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       metricsCnt,
		BrokerProducer: brokerProducer,
		TrManager:      trManager,
		AuthRequired:   cfg.Auth.Required,
	}
	services := service.NewServices(deps)

	// API server
	log.Infof("Starting API server...")
	log.Debugf("API server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	apiHandler.HideBanner = true
	v1.RegisterRoutes(apiHandler, services, metricsCnt)
	apiServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(apiServer, metricsServer)
}

func shutdownApp(servers ...*httpserver.Server) {
	log.Info("Shutting down...")
	for _, srv := range servers {
		if err := srv.Shutdown(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
}
