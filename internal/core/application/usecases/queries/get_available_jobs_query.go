package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAvailableJobsQueryIsNotConstructed = errors.New(
	"GetAvailableJobsQuery must be created via NewGetAvailableJobsQuery constructor",
)

// GetAvailableJobsQuery lists the searching pool for anyone who is not a customer.
type GetAvailableJobsQuery struct { //nolint:recvcheck //using for validation
	caller kernel.Caller

	guard guard.ConstructorGuard
}

func NewGetAvailableJobsQuery(caller kernel.Caller) (GetAvailableJobsQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetAvailableJobsQuery{}, err
	}

	return GetAvailableJobsQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableJobsQueryIsNotConstructed)
}

func (q GetAvailableJobsQuery) Caller() kernel.Caller {
	return q.caller
}
