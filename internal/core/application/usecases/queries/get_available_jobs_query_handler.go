package queries

import (
	"context"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAvailableJobsQueryHandler reads searching jobs, newest first.
// Customers get Forbidden: the pool is for people who can take work.
type GetAvailableJobsQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableJobsQueryHandler(db *gorm.DB) GetAvailableJobsQueryHandler {
	return GetAvailableJobsQueryHandler{db: db}
}

func (h GetAvailableJobsQueryHandler) Handle(ctx context.Context, query GetAvailableJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Caller().Role() == kernel.RoleCustomer {
		return nil, errs.NewForbiddenError("jobs", "customers cannot browse available jobs")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+jobColumns+`
		FROM jobs
		WHERE status = ?
		ORDER BY created_at DESC, id
	`, job.Searching.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows, query.Caller().ID())
}
