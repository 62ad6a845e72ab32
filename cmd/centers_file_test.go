package cmd

import (
	"strings"
	"testing"

	"marketplace/internal/core/domain/model/emergency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const centersTOML = `
[[center]]
id = "8a3c1f0e-5b7d-4e2a-9c6f-1d2e3f4a5b6c"
name = "Central Police Station"
latitude = 12.9716
longitude = 77.5946
service_radius_km = 25
phone = "100"

[[center]]
name = "Airport Security Desk"
latitude = 13.1986
longitude = 77.7066
active = false
email = "desk@airport.example"
`

func TestReadCenters(t *testing.T) {
	centers, err := ReadCenters(strings.NewReader(centersTOML))
	require.NoError(t, err)
	require.Len(t, centers, 2)

	central := centers[0]
	assert.Equal(t, "8a3c1f0e-5b7d-4e2a-9c6f-1d2e3f4a5b6c", central.ID().String())
	assert.InDelta(t, 25.0, central.ServiceRadiusKm(), 1e-9)
	assert.True(t, central.IsActive())
	assert.Equal(t, "100", central.Contact().Phone)

	airport := centers[1]
	assert.False(t, airport.IsActive())
	assert.InDelta(t, emergency.DefaultServiceRadiusKm, airport.ServiceRadiusKm(), 1e-9)
	assert.Equal(t, "desk@airport.example", airport.Contact().Email)
}

func TestReadCenters_DerivedIDsAreStable(t *testing.T) {
	first, err := ReadCenters(strings.NewReader(centersTOML))
	require.NoError(t, err)
	second, err := ReadCenters(strings.NewReader(centersTOML))
	require.NoError(t, err)

	assert.True(t, first[1].ID().IsEqual(second[1].ID()))
}

func TestReadCenters_ReportsEveryInvalidEntry(t *testing.T) {
	_, err := ReadCenters(strings.NewReader(`
[[center]]
name = ""
latitude = 1
longitude = 1

[[center]]
name = "Nowhere"
latitude = 123
longitude = 1
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "center 1")
	assert.Contains(t, err.Error(), "center 2")
}

func TestReadCenters_MalformedFile(t *testing.T) {
	_, err := ReadCenters(strings.NewReader(`[[center]`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse centers file")
}
