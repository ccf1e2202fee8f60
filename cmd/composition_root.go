package cmd

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"
	"time"

	"printflow/internal/adapters/in/http"
	"printflow/internal/adapters/out/postgres"
	"printflow/internal/adapters/out/postgres/notify"
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/ports"
	"printflow/internal/jobs"
	"printflow/internal/pkg/keylock"
	"printflow/internal/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultStaleAfter    = 30 * time.Minute
	defaultLockAttempts  = 3
	defaultLockRetryWait = 200 * time.Millisecond
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locks      *keylock.KeyedMutex
	registry   *realtime.Registry
	hub        *http.SSEHub
	engine     *realtime.FanoutEngine
	notifier   ports.ChangeNotifier
	listener   *notify.Listener
	jobManager *jobs.JobManager
	instanceID string
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, sqlDB *sql.DB, logger *slog.Logger) CompositionRoot {
	instanceID := configs.InstanceID
	if instanceID == "" {
		instanceID = uuid.NewString()
	}

	registry := realtime.NewRegistry()
	hub := http.NewSSEHub()
	engine := realtime.NewFanoutEngine(registry, hub, logger)

	publisher := notify.NewPublisher(sqlDB, instanceID)
	notifier := localAndRelayNotifier{engine: engine, publisher: publisher}

	listener := notify.NewListener(
		configs.PostgresDSN(),
		instanceID,
		engine.Apply,
		logger,
	)

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      keylock.New(lockAttempts(configs), lockRetryWait(configs)),
		registry:   registry,
		hub:        hub,
		engine:     engine,
		notifier:   notifier,
		listener:   listener,
		instanceID: instanceID,
		logger:     logger,
	}

	root.jobManager = jobs.NewJobManager(
		root.uowFactoryPort(),
		engine,
		staleAfter(configs),
		logger,
	)

	return root
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.uowFactoryPort(), c.notifier)
}

func (c *CompositionRoot) CreateApplyTransitionCommandHandler() commands.ApplyTransitionCommandHandler {
	return commands.NewApplyTransitionCommandHandler(c.uowFactoryPort(), c.locks, c.notifier)
}

func (c *CompositionRoot) CreateListVisibleJobsQueryHandler() queries.ListVisibleJobsQueryHandler {
	return queries.NewListVisibleJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobHistoryQueryHandler() queries.GetJobHistoryQueryHandler {
	return queries.NewGetJobHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateJobCommandHandler(),
		c.CreateApplyTransitionCommandHandler(),
		c.CreateListVisibleJobsQueryHandler(),
		c.CreateGetJobHistoryQueryHandler(),
		c.registry,
		c.hub,
	)
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// StartListener runs the cross-instance change listener until ctx is done.
func (c *CompositionRoot) StartListener(ctx context.Context) {
	go func() {
		if err := c.listener.Run(ctx); err != nil && ctx.Err() == nil {
			c.logger.ErrorContext(ctx, "Change listener stopped", "error", err)
		}
	}()
}

func (c *CompositionRoot) uowFactoryPort() commands.UoWFactory {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return f
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// localAndRelayNotifier fans a change out to this instance's subscribers and
// relays it to the other instances over Postgres NOTIFY. The relay error is
// returned so the caller can log it; local fan-out never fails.
type localAndRelayNotifier struct {
	engine    *realtime.FanoutEngine
	publisher *notify.Publisher
}

func (n localAndRelayNotifier) NotifyJobChanged(ctx context.Context, change ports.JobChange) error {
	_ = n.engine.NotifyJobChanged(ctx, change)
	return n.publisher.NotifyJobChanged(ctx, change)
}

func staleAfter(configs Config) time.Duration {
	minutes, err := strconv.Atoi(configs.StaleAfterMinutes)
	if err != nil || minutes <= 0 {
		return defaultStaleAfter
	}
	return time.Duration(minutes) * time.Minute
}

func lockAttempts(configs Config) int {
	attempts, err := strconv.Atoi(configs.LockRetryAttempts)
	if err != nil || attempts <= 0 {
		return defaultLockAttempts
	}
	return attempts
}

func lockRetryWait(configs Config) time.Duration {
	millis, err := strconv.Atoi(configs.LockRetryWaitMillis)
	if err != nil || millis <= 0 {
		return defaultLockRetryWait
	}
	return time.Duration(millis) * time.Millisecond
}
