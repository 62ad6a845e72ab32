package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetWorkerJobsQueryIsNotConstructed = errors.New(
	"GetWorkerJobsQuery must be created via NewGetWorkerJobsQuery constructor",
)

// GetWorkerJobsQuery lists the jobs assigned to a worker, newest first.
type GetWorkerJobsQuery struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWorkerJobsQuery(workerID kernel.UUID) (GetWorkerJobsQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerJobsQuery{}, err
	}

	return GetWorkerJobsQuery{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetWorkerJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerJobsQueryIsNotConstructed)
}

func (q GetWorkerJobsQuery) WorkerID() kernel.UUID {
	return q.workerID
}
