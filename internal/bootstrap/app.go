// Package bootstrap wires configuration, logging, event dispatch and persistence
// into a ready-to-use sync job service.
package bootstrap

import (
	"fmt"

	appsyncjob "github.com/ccasync/backend/internal/application/syncjob"
	"github.com/ccasync/backend/internal/infrastructure/config"
	"github.com/ccasync/backend/internal/infrastructure/event"
	"github.com/ccasync/backend/internal/infrastructure/logger"
	"github.com/ccasync/backend/internal/infrastructure/persistence/memory"
	"github.com/ccasync/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// App holds the wired components
type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Database   *memory.Database
	Stores     *memory.Stores
	Serializer *event.EventSerializer
	Dispatcher *event.InMemoryDispatcher
	Metrics    *telemetry.SyncJobMetrics
	SyncJobs   *appsyncjob.Service
}

// Option customizes App construction
type Option func(*options)

type options struct {
	logger        *zap.Logger
	meterProvider metric.MeterProvider
}

// WithLogger uses the given logger instead of building one from configuration
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithMeterProvider records sync job metrics on mp instead of the global meter provider
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// New wires an App from cfg
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: configuration is required")
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger
	if log == nil {
		var err error
		log, err = logger.New(&logger.Config{
			Level:    cfg.Log.Level,
			Format:   cfg.Log.Format,
			Output:   cfg.Log.Output,
			OTel:     cfg.Log.OTel,
			OTelName: cfg.App.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	log = log.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env))

	serializer := event.NewEventSerializer()
	event.RegisterAllEvents(serializer)

	dispatcher := event.NewInMemoryDispatcher(event.DispatcherConfig{
		HandlerTimeout: cfg.Event.HandlerTimeout,
		FailFast:       cfg.Event.FailFast,
	}, logger.Named(log, "event"))
	if cfg.Event.LogEvents {
		dispatcher.Subscribe(event.NewLoggingHandler(logger.Named(log, "event"), serializer))
	}

	meterProvider := o.meterProvider
	if meterProvider == nil {
		meterProvider = otel.GetMeterProvider()
	}
	metrics, err := telemetry.NewSyncJobMetrics(meterProvider.Meter(telemetry.TracerName))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	dispatcher.Subscribe(metrics)

	db := memory.NewDatabase()
	stores := memory.NewStores(db)
	sessions := memory.NewSyncJobSessionFactory(db, stores.Jobs, logger.Named(log, "persistence"))

	app := &App{
		Config:     cfg,
		Logger:     log,
		Database:   db,
		Stores:     stores,
		Serializer: serializer,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		SyncJobs:   appsyncjob.NewService(sessions, dispatcher, log),
	}

	log.Info("application wired",
		zap.Int("event_handlers", dispatcher.HandlerCount()),
		zap.Int("event_types", len(serializer.RegisteredTypes())),
		zap.Bool("fail_fast", cfg.Event.FailFast),
	)
	return app, nil
}

// Close flushes buffered logs
func (a *App) Close() error {
	return logger.Sync(a.Logger)
}
