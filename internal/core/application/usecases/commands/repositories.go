// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	PanicAlertRepoFactory interface {
		PanicAlertRepository() ports.PanicAlertRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	JobUoWFactory interface {
		Create() JobUoW
	}

	// SettlementUoW spans the job, the worker wallet and the ledger so a
	// completion and its credit commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   j, _ := uow.JobRepository().Get(ctx, id)
	//   // ... verify, settle, write job, wallet and entries
	//
	//   err = uow.Commit(ctx)
	SettlementUoW interface {
		TxManager
		JobRepoFactory
		WalletRepoFactory
		TransactionRepoFactory
	}

	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// PanicUoW reads the job and stores the alert.
	PanicUoW interface {
		TxManager
		JobRepoFactory
		PanicAlertRepoFactory
	}

	PanicUoWFactory interface {
		Create() PanicUoW
	}
)
