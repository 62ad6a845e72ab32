package cmd

import (
	"errors"
	"log/slog"

	"marketplace/internal/adapters/in/auth"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/in/ws"
	"marketplace/internal/adapters/out/centerfinder"
	kafkaout "marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/emergencyrepo"
	"marketplace/internal/adapters/out/redisgeo"
	"marketplace/internal/core/application/eventhandlers"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and background jobs.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *ws.Registry
	verifier   *auth.TokenVerifier
	finder     ports.CenterFinder
	syncer     jobs.CenterSyncer
	closers    []func() error
}

// NewCompositionRoot builds the long-lived dependencies. Redis and Kafka are
// optional: without them panic routing scans the center table and domain
// events only reach relay clients and metrics.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	verifier, err := auth.NewTokenVerifier(config.JWTSecret)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:   config,
		logger:   logger,
		gormDB:   gormDB,
		registry: ws.NewRegistry(logger),
		verifier: verifier,
	}

	notifications, err := eventhandlers.NewNotificationPublisher(c.registry)
	if err != nil {
		return nil, err
	}
	sinks := []eventhandlers.Sink{
		{Name: "relay", Publisher: notifications},
		{Name: "metrics", Publisher: eventhandlers.NewMetricsPublisher()},
	}
	if len(config.KafkaBrokers) > 0 {
		writer := kafkaout.NewWriter(config.KafkaBrokers)
		publisher, pubErr := kafkaout.NewEventPublisher(writer, kafkaout.Topics{
			JobEvents:   config.KafkaJobEventsTopic,
			PanicEvents: config.KafkaPanicEventsTopic,
		})
		if pubErr != nil {
			return nil, pubErr
		}
		sinks = append(sinks, eventhandlers.Sink{Name: "kafka", Publisher: publisher})
		c.closers = append(c.closers, publisher.Close)
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, eventhandlers.NewFanOutPublisher(sinks...), logger)

	centers := emergencyrepo.NewGormCenterRepository(gormDB)
	if config.RedisAddr == "" {
		c.finder = centerfinder.NewScanFinder(centers)
		return c, nil
	}

	client, err := redisgeo.NewClient(config.RedisAddr)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.closers = append(c.closers, client.Close)
	indexed := centerfinder.NewIndexedFinder(redisgeo.NewIndex(client, redisgeo.DefaultKey), centers, logger)
	c.finder = indexed
	c.syncer = indexed

	return c, nil
}

// Close releases connections opened by the root.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceJobStatusCommandHandler() commands.AdvanceJobStatusCommandHandler {
	return commands.NewAdvanceJobStatusCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateVerifyOtpCommandHandler() commands.VerifyOtpCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyOtpCommandHandler(f)
}

func (c *CompositionRoot) CreateTriggerPanicCommandHandler() commands.TriggerPanicCommandHandler {
	var f commands.PanicUoWFactory = FuncPanicUoWFactory(func() commands.PanicUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTriggerPanicCommandHandler(f, c.finder, c.logger)
}

func (c *CompositionRoot) CreateRelayLocationUpdateCommandHandler() commands.RelayLocationUpdateCommandHandler {
	return commands.NewRelayLocationUpdateCommandHandler(c.jobUoWFactory(), c.registry)
}

func (c *CompositionRoot) CreateGetCustomerJobsQueryHandler() queries.GetCustomerJobsQueryHandler {
	return queries.NewGetCustomerJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerJobsQueryHandler() queries.GetWorkerJobsQueryHandler {
	return queries.NewGetWorkerJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableJobsQueryHandler() queries.GetAvailableJobsQueryHandler {
	return queries.NewGetAvailableJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletBalanceQueryHandler() queries.GetWalletBalanceQueryHandler {
	return queries.NewGetWalletBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletTransactionsQueryHandler() queries.GetWalletTransactionsQueryHandler {
	return queries.NewGetWalletTransactionsQueryHandler(c.gormDB)
}

// CreateRouter assembles the REST API and the relay endpoint.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server, err := httpin.NewServer(httpin.Handlers{
		CreateJob:          c.CreateCreateJobCommandHandler(),
		AcceptJob:          c.CreateAcceptJobCommandHandler(),
		AdvanceJobStatus:   c.CreateAdvanceJobStatusCommandHandler(),
		VerifyOtp:          c.CreateVerifyOtpCommandHandler(),
		CancelJob:          c.CreateCancelJobCommandHandler(),
		TriggerPanic:       c.CreateTriggerPanicCommandHandler(),
		CustomerJobs:       c.CreateGetCustomerJobsQueryHandler(),
		WorkerJobs:         c.CreateGetWorkerJobsQueryHandler(),
		AvailableJobs:      c.CreateGetAvailableJobsQueryHandler(),
		WalletBalance:      c.CreateGetWalletBalanceQueryHandler(),
		WalletTransactions: c.CreateGetWalletTransactionsQueryHandler(),
	})
	if err != nil {
		return nil, err
	}

	session := ws.NewSession(c.registry, c.CreateRelayLocationUpdateCommandHandler(), c.logger)
	relay := ws.NewHandler(c.verifier, c.registry, session, c.logger)

	return httpin.NewRouter(httpin.RouterConfig{
		Server:               server,
		Authenticator:        c.verifier,
		Relay:                relay.Connect,
		Logger:               c.logger,
		OtpAttemptsPerMinute: c.config.OtpRateLimitPerMinute,
	})
}

// CreateJobManager schedules the relay heartbeat and, with Redis configured,
// the center index sync.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.registry, c.syncer, jobs.Schedules{
		RelayHeartbeat:  c.config.RelayHeartbeatSpec,
		CenterIndexSync: c.config.CenterIndexSyncSpec,
	}, c.logger)
}

// CloseRelayConnections closes every open websocket. Hijacked connections are
// not tracked by the HTTP server's Shutdown.
func (c *CompositionRoot) CloseRelayConnections() int {
	return c.registry.CloseAll()
}

func (c *CompositionRoot) TokenVerifier() *auth.TokenVerifier {
	return c.verifier
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncPanicUoWFactory func() commands.PanicUoW

func (f FuncPanicUoWFactory) Create() commands.PanicUoW {
	return f()
}
