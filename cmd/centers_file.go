package cmd

import (
	"errors"
	"fmt"
	"io"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// centerNamespace derives stable ids for centers listed without one, so
// re-running a seed updates rows instead of duplicating them.
var centerNamespace = uuid.MustParse("6f1c9a52-3d0e-4b8f-9a57-2f4d1c0e8b31")

type centersFile struct {
	Centers []centerEntry `toml:"center"`
}

type centerEntry struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	Latitude        float64 `toml:"latitude"`
	Longitude       float64 `toml:"longitude"`
	ServiceRadiusKm float64 `toml:"service_radius_km"`
	Active          *bool   `toml:"active"`
	Phone           string  `toml:"phone"`
	Email           string  `toml:"email"`
}

// ReadCenters parses a TOML list of emergency centers:
//
//	[[center]]
//	name = "Central Police Station"
//	latitude = 12.9716
//	longitude = 77.5946
//	service_radius_km = 25
//	phone = "100"
//
// id defaults to a value derived from name, active to true and
// service_radius_km to the domain default.
func ReadCenters(r io.Reader) ([]*emergency.Center, error) {
	var file centersFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("parse centers file: %w", err)
	}

	centers := make([]*emergency.Center, 0, len(file.Centers))
	var problems []error
	for i, entry := range file.Centers {
		center, err := entry.toDomain()
		if err != nil {
			problems = append(problems, fmt.Errorf("center %d (%q): %w", i+1, entry.Name, err))
			continue
		}
		centers = append(centers, center)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return centers, nil
}

func (e centerEntry) toDomain() (*emergency.Center, error) {
	id, err := e.id()
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(e.Latitude, e.Longitude)
	if err != nil {
		return nil, err
	}
	active := true
	if e.Active != nil {
		active = *e.Active
	}

	return emergency.NewCenter(id, e.Name, location, e.ServiceRadiusKm, active, emergency.CenterContact{
		Phone: e.Phone,
		Email: e.Email,
	})
}

func (e centerEntry) id() (kernel.UUID, error) {
	if e.ID != "" {
		return kernel.UUIDFromString(e.ID)
	}
	derived := uuid.NewSHA1(centerNamespace, []byte(e.Name))
	return kernel.UUIDFromBytes(derived[:])
}
