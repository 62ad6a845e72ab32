package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetWorkerJobsQueryHandler reads jobs by assigned worker. Workers never see
// the OTP; they learn it from the customer on site.
type GetWorkerJobsQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkerJobsQueryHandler(db *gorm.DB) GetWorkerJobsQueryHandler {
	return GetWorkerJobsQueryHandler{db: db}
}

func (h GetWorkerJobsQueryHandler) Handle(ctx context.Context, query GetWorkerJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+jobColumns+`
		FROM jobs
		WHERE worker_id = ?
		ORDER BY created_at DESC, id
	`, query.WorkerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows, query.WorkerID())
}
