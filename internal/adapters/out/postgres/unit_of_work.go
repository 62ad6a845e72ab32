// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work maintains a list of aggregates affected by a business
// transaction, coordinates writing out changes and, once the transaction has
// committed, hands the recorded domain events to an EventPublisher.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.JobRepository().Update(ctx, j); err != nil {
//	    return err
//	}
//	if err := uow.WalletRepository().Update(ctx, w); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // events of j and w are published here
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Job updates are compare-and-swap on the status column; wallets are row locked
package postgres

import (
	"context"
	"log/slog"

	"marketplace/internal/adapters/out/postgres/emergencyrepo"
	"marketplace/internal/adapters/out/postgres/jobrepo"
	"marketplace/internal/adapters/out/postgres/walletrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// publisher may be nil, in which case recorded events are dropped after commit.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
//
// Repositories obtained before Begin run on the plain connection; repositories
// obtained after Begin share the transaction. Handlers therefore always call
// Begin first.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction and then
// publishes the domain events of every tracked aggregate.
//
// Publishing happens strictly after the commit: a failed commit publishes
// nothing, and a failed publish is logged without affecting the result.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTrackedEvents(context.WithoutCancel(ctx))
	return nil
}

// Rollback discards all changes made within the current transaction together
// with the tracked aggregates.
//
// Returns error if no active transaction exists or if the rollback operation fails.
// Handlers defer it unconditionally, so after a Commit it returns
// gorm.ErrInvalidTransaction and the error is ignored.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WalletRepository() ports.WalletRepository {
	return walletrepo.NewGormWalletRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TransactionRepository() ports.TransactionRepository {
	return walletrepo.NewGormTransactionRepository(uow.conn())
}

func (uow *GormUnitOfWork) EmergencyCenterRepository() ports.EmergencyCenterRepository {
	return emergencyrepo.NewGormCenterRepository(uow.conn())
}

func (uow *GormUnitOfWork) PanicAlertRepository() ports.PanicAlertRepository {
	return emergencyrepo.NewGormAlertRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Repositories call it after every successful write. Tracking the same
// aggregate twice is harmless; its events are collected once.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// collectEvents drains the recorded events of tracked aggregates in tracking order.
func (uow *GormUnitOfWork) collectEvents() []kernel.DomainEvent {
	seen := make(map[kernel.AggregateRoot]struct{}, len(uow.trackedAggregates))
	events := make([]kernel.DomainEvent, 0)

	for _, tracked := range uow.trackedAggregates {
		root, ok := tracked.Aggregate.(kernel.AggregateRoot)
		if !ok {
			continue
		}
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}

		events = append(events, root.DomainEvents()...)
		root.ClearDomainEvents()
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	return events
}

func (uow *GormUnitOfWork) publishTrackedEvents(ctx context.Context) {
	events := uow.collectEvents()
	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.Error("publish domain events", "error", err, "count", len(events))
	}
}
