package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerJobsQueryHandler reads the customer's own jobs. The OTP is part
// of every row because the caller owns them all.
//
// Example:
//
//	query, _ := NewGetCustomerJobsQuery(caller.ID())
//	jobs, err := handler.Handle(ctx, query)
type GetCustomerJobsQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerJobsQueryHandler(db *gorm.DB) GetCustomerJobsQueryHandler {
	return GetCustomerJobsQueryHandler{db: db}
}

func (h GetCustomerJobsQueryHandler) Handle(ctx context.Context, query GetCustomerJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+jobColumns+`
		FROM jobs
		WHERE customer_id = ?
		ORDER BY created_at DESC, id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows, query.CustomerID())
}
