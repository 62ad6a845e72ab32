package emergencyrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCenterRepository implements ports.EmergencyCenterRepository using GORM.
type GormCenterRepository struct {
	db *gorm.DB
}

func NewGormCenterRepository(db *gorm.DB) *GormCenterRepository {
	return &GormCenterRepository{db: db}
}

// GetAllActive returns every active center ordered by id.
func (r *GormCenterRepository) GetAllActive(ctx context.Context) ([]*emergency.Center, error) {
	var dtos []CenterDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return centersToDomain(dtos)
}

// GetByIDs returns the active centers among ids ordered by id.
func (r *GormCenterRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*emergency.Center, error) {
	if len(ids) == 0 {
		return []*emergency.Center{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []CenterDTO
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", raw, true).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return centersToDomain(dtos)
}

// Upsert inserts the center or overwrites every column of an existing one.
func (r *GormCenterRepository) Upsert(ctx context.Context, center *emergency.Center) error {
	if err := center.Validate(); err != nil {
		return err
	}

	dto := centerFromDomain(center)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "latitude", "longitude", "service_radius_km",
				"is_active", "contact_phone", "contact_email",
			}),
		}).
		Create(&dto).Error
}

func centersToDomain(dtos []CenterDTO) ([]*emergency.Center, error) {
	centers := make([]*emergency.Center, 0, len(dtos))
	for _, dto := range dtos {
		c, err := centerToDomain(dto)
		if err != nil {
			return nil, err
		}
		centers = append(centers, c)
	}
	return centers, nil
}

// GormAlertRepository implements ports.PanicAlertRepository using GORM.
type GormAlertRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAlertRepository(db *gorm.DB, tracker aggregateTracker) *GormAlertRepository {
	return &GormAlertRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAlertRepository) Add(ctx context.Context, alert *emergency.Alert) error {
	if err := alert.Validate(); err != nil {
		return err
	}

	dto := alertFromDomain(alert)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(alert.ID(), alert)
	return nil
}

func (r *GormAlertRepository) Get(ctx context.Context, id kernel.UUID) (*emergency.Alert, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AlertDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("panic alert", id.String())
		}
		return nil, err
	}

	return alertToDomain(dto)
}
