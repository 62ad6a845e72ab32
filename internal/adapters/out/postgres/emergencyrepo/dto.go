// Package emergencyrepo persists emergency centers and panic alerts.
package emergencyrepo

import (
	"time"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CenterDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255)"`
	Latitude        float64
	Longitude       float64
	ServiceRadiusKm float64
	IsActive        bool
	ContactPhone    string `gorm:"type:varchar(50)"`
	ContactEmail    string `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
}

func (CenterDTO) TableName() string {
	return "emergency_centers"
}

type AlertDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID             uuid.UUID `gorm:"type:uuid;index"`
	TriggeredByUserID uuid.UUID `gorm:"type:uuid"`
	RoleAtTime        string    `gorm:"type:varchar(20)"`
	Latitude          float64
	Longitude         float64
	Status            string `gorm:"type:varchar(20)"`
	Notes             string
	CreatedAt         time.Time
	ResolvedAt        *time.Time
}

func (AlertDTO) TableName() string {
	return "panic_alerts"
}

func centerFromDomain(c *emergency.Center) CenterDTO {
	contact := c.Contact()
	return CenterDTO{
		ID:              c.ID().Bytes(),
		Name:            c.Name(),
		Latitude:        c.Location().Latitude(),
		Longitude:       c.Location().Longitude(),
		ServiceRadiusKm: c.ServiceRadiusKm(),
		IsActive:        c.IsActive(),
		ContactPhone:    contact.Phone,
		ContactEmail:    contact.Email,
		CreatedAt:       time.Now().UTC(),
	}
}

func centerToDomain(dto CenterDTO) (*emergency.Center, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return emergency.NewCenter(id, dto.Name, location, dto.ServiceRadiusKm, dto.IsActive, emergency.CenterContact{
		Phone: dto.ContactPhone,
		Email: dto.ContactEmail,
	})
}

func alertFromDomain(a *emergency.Alert) AlertDTO {
	return AlertDTO{
		ID:                a.ID().Bytes(),
		JobID:             a.JobID().Bytes(),
		TriggeredByUserID: a.TriggeredBy().Bytes(),
		RoleAtTime:        string(a.RoleAtTime()),
		Latitude:          a.Location().Latitude(),
		Longitude:         a.Location().Longitude(),
		Status:            string(a.Status()),
		Notes:             a.Notes(),
		CreatedAt:         a.CreatedAt(),
		ResolvedAt:        a.ResolvedAt(),
	}
}

func alertToDomain(dto AlertDTO) (*emergency.Alert, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}
	triggeredBy, err := kernel.UUIDFromBytes(dto.TriggeredByUserID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return emergency.RestoreAlert(emergency.AlertSnapshot{
		ID:          id,
		JobID:       jobID,
		TriggeredBy: triggeredBy,
		RoleAtTime:  job.Participant(dto.RoleAtTime),
		Location:    location,
		Status:      emergency.AlertStatus(dto.Status),
		Notes:       dto.Notes,
		CreatedAt:   dto.CreatedAt,
		ResolvedAt:  dto.ResolvedAt,
	})
}
