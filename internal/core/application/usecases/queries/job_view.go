// Package queries contains read-only operations of the CQRS layer.
// Handlers run plain SQL against the read model and never load aggregates.
package queries

import (
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// jobColumns is the projection shared by every job listing.
const jobColumns = `
	id,
	customer_id,
	worker_id,
	status,
	service_type,
	description,
	otp,
	price_cents,
	workers_needed,
	latitude,
	longitude,
	address,
	created_at,
	accepted_at,
	completed_at`

// JobView is the read model of a job as shown to one of its participants.
// OTP is only filled for the job's customer.
type JobView struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	WorkerID      *kernel.UUID
	Status        job.Status
	ServiceType   string
	Description   string
	OTP           string
	Price         kernel.Money
	WorkersNeeded int
	Location      kernel.GeoPoint
	Address       string
	CreatedAt     time.Time
	AcceptedAt    *time.Time
	CompletedAt   *time.Time
}

// scanJobs reads jobColumns rows. The OTP is kept only on jobs whose customer
// is viewerID.
func scanJobs(rows *sql.Rows, viewerID kernel.UUID) ([]JobView, error) {
	views := make([]JobView, 0)

	for rows.Next() {
		var (
			view                    JobView
			id, customerID          uuid.UUID
			workerID                uuid.NullUUID
			status, otp             string
			priceCents              int64
			latitude, longitude     float64
			acceptedAt, completedAt sql.NullTime
		)

		if err := rows.Scan(
			&id,
			&customerID,
			&workerID,
			&status,
			&view.ServiceType,
			&view.Description,
			&otp,
			&priceCents,
			&view.WorkersNeeded,
			&latitude,
			&longitude,
			&view.Address,
			&view.CreatedAt,
			&acceptedAt,
			&completedAt,
		); err != nil {
			return nil, err
		}

		var err error
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if workerID.Valid {
			w, wErr := kernel.UUIDFromBytes(workerID.UUID[:])
			if wErr != nil {
				return nil, wErr
			}
			view.WorkerID = &w
		}
		if view.Price, err = kernel.NewMoneyFromCents(priceCents); err != nil {
			return nil, err
		}
		if view.Location, err = kernel.NewGeoPoint(latitude, longitude); err != nil {
			return nil, err
		}

		view.Status = job.Status(status)
		if view.CustomerID.IsEqual(viewerID) {
			view.OTP = otp
		}
		if acceptedAt.Valid {
			view.AcceptedAt = &acceptedAt.Time
		}
		if completedAt.Valid {
			view.CompletedAt = &completedAt.Time
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
