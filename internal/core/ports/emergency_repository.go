package ports

import (
	"context"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"
)

// EmergencyCenterRepository reads the reference list of emergency centers.
// Upsert exists for seeding only; the request path never writes centers.
type EmergencyCenterRepository interface {
	// GetAllActive returns active centers ordered by id.
	GetAllActive(ctx context.Context) ([]*emergency.Center, error)

	// GetByIDs returns the active centers among ids, ordered by id. Unknown ids
	// are skipped.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*emergency.Center, error)

	Upsert(ctx context.Context, center *emergency.Center) error
}

// PanicAlertRepository persists panic alerts.
type PanicAlertRepository interface {
	Add(ctx context.Context, alert *emergency.Alert) error
	Get(ctx context.Context, id kernel.UUID) (*emergency.Alert, error)
}
