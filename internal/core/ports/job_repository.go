// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories, the unit of work, event delivery and center lookup.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update writes the job only if the stored status still equals
	// aggregate.PersistedStatus(). When another request moved the job first,
	// zero rows match and an errs.ConflictError is returned.
	//
	// This is what makes Accept exactly-once:
	//
	//	UPDATE jobs SET ... WHERE id = $1 AND status = 'searching'
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)
}
