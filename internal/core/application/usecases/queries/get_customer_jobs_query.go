package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCustomerJobsQueryIsNotConstructed = errors.New(
	"GetCustomerJobsQuery must be created via NewGetCustomerJobsQuery constructor",
)

// GetCustomerJobsQuery lists the jobs a customer has opened, newest first.
type GetCustomerJobsQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomerJobsQuery(customerID kernel.UUID) (GetCustomerJobsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerJobsQuery{}, err
	}

	return GetCustomerJobsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerJobsQueryIsNotConstructed)
}

func (q GetCustomerJobsQuery) CustomerID() kernel.UUID {
	return q.customerID
}
