package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "organization_id", ToSnakeCase("OrganizationID"))
	assert.Equal(t, "applied_at", ToSnakeCase("AppliedAt"))
	assert.Equal(t, "status", ToSnakeCase("Status"))
	assert.Equal(t, "reject_reason", ToSnakeCase("RejectReason"))
}

func TestDistanceKm(t *testing.T) {
	// Москва - Санкт-Петербург, ~634 км
	dist := DistanceKm(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634, dist, 5)

	assert.Zero(t, DistanceKm(55.75, 37.62, 55.75, 37.62))
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	lat, lon, radiusKm := 55.75, 37.62, 10.0
	minLat, maxLat, minLon, maxLon := BoundingBox(lat, lon, radiusKm)

	assert.Less(t, minLat, lat)
	assert.Greater(t, maxLat, lat)
	assert.Less(t, minLon, lon)
	assert.Greater(t, maxLon, lon)

	// углы рамки не ближе радиуса
	assert.GreaterOrEqual(t, DistanceKm(lat, lon, maxLat, lon), radiusKm*0.99)
	assert.GreaterOrEqual(t, DistanceKm(lat, lon, lat, maxLon), radiusKm*0.99)
}
