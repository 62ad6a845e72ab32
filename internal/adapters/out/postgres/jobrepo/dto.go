// Package jobrepo maps job aggregates to the jobs table.
package jobrepo

import (
	"time"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the row shape of the jobs table.
type JobDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	WorkerID      *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"type:varchar(32);index"`
	ServiceType   string     `gorm:"type:varchar(100)"`
	Description   string
	OTP           string `gorm:"column:otp;type:char(4)"`
	PriceCents    int64
	WorkersNeeded int
	Latitude      float64
	Longitude     float64
	Address       string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	AcceptedAt    *time.Time
	CompletedAt   *time.Time
}

func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(j *job.Job) JobDTO {
	var workerID *uuid.UUID
	if id := j.WorkerID(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	d := j.Details()
	return JobDTO{
		ID:            j.ID().Bytes(),
		CustomerID:    j.CustomerID().Bytes(),
		WorkerID:      workerID,
		Status:        j.Status().String(),
		ServiceType:   d.ServiceType,
		Description:   d.Description,
		OTP:           j.OTP().String(),
		PriceCents:    d.Price.Cents(),
		WorkersNeeded: d.WorkersNeeded,
		Latitude:      d.Location.Latitude(),
		Longitude:     d.Location.Longitude(),
		Address:       d.Address,
		CreatedAt:     j.CreatedAt(),
		AcceptedAt:    j.AcceptedAt(),
		CompletedAt:   j.CompletedAt(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(job.Snapshot{
		ID:         id,
		CustomerID: customerID,
		WorkerID:   workerID,
		Status:     job.Status(dto.Status),
		OTP:        dto.OTP,
		Details: job.Details{
			ServiceType:   dto.ServiceType,
			Description:   dto.Description,
			Price:         price,
			WorkersNeeded: dto.WorkersNeeded,
			Location:      location,
			Address:       dto.Address,
		},
		CreatedAt:   dto.CreatedAt,
		AcceptedAt:  dto.AcceptedAt,
		CompletedAt: dto.CompletedAt,
	})
}
