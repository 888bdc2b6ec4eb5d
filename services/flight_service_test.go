package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_Properties(t *testing.T) {
	svc := NewFlightService()

	t.Run("zero to itself", func(t *testing.T) {
		assert.InDelta(t, 0, svc.CalculateDistance(51.47, -0.4543, 51.47, -0.4543), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := svc.CalculateDistance(51.47, -0.4543, 40.6413, -73.7781)
		ba := svc.CalculateDistance(40.6413, -73.7781, 51.47, -0.4543)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("known route magnitude", func(t *testing.T) {
		// LHR-JFK great-circle distance is about 5540 km.
		d := svc.CalculateDistance(51.47, -0.4543, 40.6413, -73.7781)
		assert.InDelta(t, 5540, d, 60)
	})
}

func TestDurationForDistance(t *testing.T) {
	t.Run("exact ten hours", func(t *testing.T) {
		_, hours, minutes := DurationForDistance(8500)
		assert.Equal(t, 10, hours)
		assert.Equal(t, 0, minutes)
	})

	t.Run("rounds remainder minutes", func(t *testing.T) {
		// 425 km at 850 km/h is exactly half an hour.
		_, hours, minutes := DurationForDistance(425)
		assert.Equal(t, 0, hours)
		assert.Equal(t, 30, minutes)
	})
}

func TestEstimateRoute(t *testing.T) {
	svc := NewFlightService()

	t.Run("known airports", func(t *testing.T) {
		estimate, err := svc.EstimateRoute("LHR", "JFK")
		assert.NoError(t, err)
		assert.Equal(t, "LHR", estimate.Origin)
		assert.Equal(t, "JFK", estimate.Destination)
		assert.Greater(t, estimate.DistanceKM, 5000.0)
		assert.GreaterOrEqual(t, estimate.Hours, 6)
		assert.GreaterOrEqual(t, estimate.Minutes, 0)
		assert.Less(t, estimate.Minutes, 61)
		assert.Regexp(t, `^\d{2}:\d{2}$`, estimate.Formatted)
	})

	t.Run("deterministic per pair", func(t *testing.T) {
		first, err := svc.EstimateRoute("SIN", "FRA")
		assert.NoError(t, err)
		second, err := svc.EstimateRoute("SIN", "FRA")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown code produces no estimate", func(t *testing.T) {
		estimate, err := svc.EstimateRoute("XXX", "JFK")
		assert.Error(t, err)
		assert.Nil(t, estimate)

		estimate, err = svc.EstimateRoute("LHR", "ZZZ")
		assert.Error(t, err)
		assert.Nil(t, estimate)
	})
}

func TestAirportCatalog(t *testing.T) {
	svc := NewFlightService()

	airports := svc.ListAirports()
	assert.NotEmpty(t, airports)

	seen := make(map[string]bool)
	for _, a := range airports {
		assert.Len(t, a.Code, 3, "IATA codes are three letters")
		assert.False(t, seen[a.Code], "duplicate airport code %s", a.Code)
		seen[a.Code] = true
	}

	lhr, ok := svc.GetAirport("LHR")
	assert.True(t, ok)
	assert.Equal(t, "London", lhr.City)

	_, ok = svc.GetAirport("???")
	assert.False(t, ok)
}
