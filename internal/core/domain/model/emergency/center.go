package emergency

import (
	"errors"
	"math"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// DefaultServiceRadiusKm applies when a center is registered without a radius.
const DefaultServiceRadiusKm = 10.0

var ErrCenterIsNotConstructed = errors.New("Center must be created via NewCenter constructor")

// Center is an emergency response center. Each center only serves points
// within its own service radius.
type Center struct {
	id              kernel.UUID
	name            string
	location        kernel.GeoPoint
	serviceRadiusKm float64
	isActive        bool
	contactPhone    string
	contactEmail    string

	isConstructed bool
}

// CenterContact groups the optional contact details of a center.
type CenterContact struct {
	Phone string
	Email string
}

// NewCenter validates and builds a center. A zero radius becomes DefaultServiceRadiusKm.
func NewCenter(
	id kernel.UUID,
	name string,
	location kernel.GeoPoint,
	serviceRadiusKm float64,
	isActive bool,
	contact CenterContact,
) (*Center, error) {
	if serviceRadiusKm == 0 {
		serviceRadiusKm = DefaultServiceRadiusKm
	}

	problems := []error{id.Validate(), location.Validate()}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if math.IsNaN(serviceRadiusKm) || serviceRadiusKm < 0 || math.IsInf(serviceRadiusKm, 0) {
		problems = append(problems, errs.NewValueIsOutOfRangeError("serviceRadiusKm", serviceRadiusKm, 0, "finite"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Center{
		id:              id,
		name:            name,
		location:        location,
		serviceRadiusKm: serviceRadiusKm,
		isActive:        isActive,
		contactPhone:    contact.Phone,
		contactEmail:    contact.Email,
		isConstructed:   true,
	}, nil
}

func (c *Center) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCenterIsNotConstructed
	}
	return nil
}

func (c *Center) ID() kernel.UUID {
	return c.id
}

func (c *Center) Name() string {
	return c.name
}

func (c *Center) Location() kernel.GeoPoint {
	return c.location
}

func (c *Center) ServiceRadiusKm() float64 {
	return c.serviceRadiusKm
}

func (c *Center) IsActive() bool {
	return c.isActive
}

func (c *Center) Contact() CenterContact {
	return CenterContact{Phone: c.contactPhone, Email: c.contactEmail}
}

// DistanceKm returns the great-circle distance from the center to p.
func (c *Center) DistanceKm(p kernel.GeoPoint) float64 {
	return c.location.DistanceKm(p)
}

// Covers reports whether a point at distanceKm is inside the service radius.
func (c *Center) Covers(distanceKm float64) bool {
	return distanceKm <= c.serviceRadiusKm
}
