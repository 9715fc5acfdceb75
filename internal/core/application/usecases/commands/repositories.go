// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shiplabel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ExpeditionRepoFactory provides access to the expedition repository
	// within a transaction.
	ExpeditionRepoFactory interface {
		ExpeditionRepository() ports.ExpeditionRepository
	}

	// ExpeditionUoW manages transactions for expedition operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.ExpeditionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ExpeditionUoW interface {
		TxManager
		ExpeditionRepoFactory
	}

	// ExpeditionUoWFactory creates new expedition unit of work instances.
	ExpeditionUoWFactory interface {
		Create() ExpeditionUoW
	}
)
