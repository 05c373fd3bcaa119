package geo

import (
	"testing"

	"wayfinder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Symmetry(t *testing.T) {
	pairs := []struct {
		a, b entity.Coordinate
	}{
		{entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021}, entity.Coordinate{Latitude: 3.8667, Longitude: 11.5167}},
		{entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}, entity.Coordinate{Latitude: 25.0425, Longitude: 121.5649}},
		{entity.Coordinate{Latitude: -33.8688, Longitude: 151.2093}, entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522}},
	}

	for _, p := range pairs {
		assert.InDelta(t, Distance(p.a, p.b), Distance(p.b, p.a), 1e-6)
	}
}

func TestDistance_Identity(t *testing.T) {
	c := entity.Coordinate{Latitude: 3.8667, Longitude: 11.5167}
	assert.InDelta(t, 0, Distance(c, c), 1e-6)
}

func TestDistance_KnownValue(t *testing.T) {
	// Yaounde city center to Emana, roughly 2.6 km apart.
	a := entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021}
	b := entity.Coordinate{Latitude: 3.8667, Longitude: 11.5167}

	d := Distance(a, b)
	assert.Greater(t, d, 2000.0)
	assert.Less(t, d, 3500.0)
}

func TestDistance_TriangleInequality(t *testing.T) {
	a := entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021}
	b := entity.Coordinate{Latitude: 3.8667, Longitude: 11.5167}
	c := entity.Coordinate{Latitude: 3.8700, Longitude: 11.5000}

	assert.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c)+1e-6)
}

func TestBearing_Normalized(t *testing.T) {
	a := entity.Coordinate{Latitude: 0, Longitude: 0}
	north := entity.Coordinate{Latitude: 1, Longitude: 0}
	east := entity.Coordinate{Latitude: 0, Longitude: 1}

	assert.InDelta(t, 0, Bearing(a, north), 1e-6)
	assert.InDelta(t, 90, Bearing(a, east), 1e-6)

	south := entity.Coordinate{Latitude: -1, Longitude: 0}
	assert.InDelta(t, 180, Bearing(a, south), 1e-6)
}

func TestCoordinate_IsValid(t *testing.T) {
	valid := entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021}
	assert.True(t, valid.IsValid())

	invalid := []entity.Coordinate{
		{Latitude: 95, Longitude: 0},
		{Latitude: -95, Longitude: 0},
		{Latitude: 0, Longitude: 195},
		{Latitude: 0, Longitude: -195},
	}
	for _, c := range invalid {
		assert.False(t, c.IsValid())
	}
}
