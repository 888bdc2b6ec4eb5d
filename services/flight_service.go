package services

import (
	"fmt"
	"math"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
)

const (
	// earthRadiusKM is the Earth's radius used by the haversine formula.
	earthRadiusKM = 6371.0
	// cruiseSpeedKMH is the fixed average cruise speed used for duration
	// estimates. Real scheduling data is out of scope.
	cruiseSpeedKMH = 850.0
)

// FlightService estimates great-circle distance and flight duration between
// airports in the static catalog.
type FlightService interface {
	CalculateDistance(lat1, lon1, lat2, lon2 float64) float64
	EstimateRoute(originCode, destCode string) (*models.FlightEstimate, error)
	GetAirport(code string) (*models.Airport, bool)
	ListAirports() []models.Airport
}

type flightService struct {
	airports []models.Airport
	byCode   map[string]*models.Airport
}

// NewFlightService creates a new instance of FlightService backed by the
// static airport catalog.
func NewFlightService() FlightService {
	airports := getDefaultAirportCatalog()
	byCode := make(map[string]*models.Airport, len(airports))
	for i := range airports {
		byCode[airports[i].Code] = &airports[i]
	}
	return &flightService{airports: airports, byCode: byCode}
}

// CalculateDistance returns the great-circle distance in km between two
// coordinates via the haversine formula. Inputs come from the trusted
// catalog, so lat/lon domains are not validated.
func (s *flightService) CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degreesToRadians(lat1)
	lat2Rad := degreesToRadians(lat2)
	deltaLat := degreesToRadians(lat2 - lat1)
	deltaLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

// EstimateRoute computes distance and estimated duration between two catalog
// airports. Both codes must exist in the catalog; an unknown code returns an
// error before any estimate is produced.
func (s *flightService) EstimateRoute(originCode, destCode string) (*models.FlightEstimate, error) {
	origin, ok := s.byCode[originCode]
	if !ok {
		return nil, fmt.Errorf("unknown airport code %q", originCode)
	}
	dest, ok := s.byCode[destCode]
	if !ok {
		return nil, fmt.Errorf("unknown airport code %q", destCode)
	}

	distance := s.CalculateDistance(origin.Lat, origin.Lon, dest.Lat, dest.Lon)
	durationHours, hours, minutes := DurationForDistance(distance)

	return &models.FlightEstimate{
		Origin:        origin.Code,
		Destination:   dest.Code,
		DistanceKM:    distance,
		DurationHours: durationHours,
		Hours:         hours,
		Minutes:       minutes,
		Formatted:     fmt.Sprintf("%02d:%02d", hours, minutes),
	}, nil
}

// GetAirport looks up one airport by IATA code.
func (s *flightService) GetAirport(code string) (*models.Airport, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// ListAirports returns the full airport catalog.
func (s *flightService) ListAirports() []models.Airport {
	out := make([]models.Airport, len(s.airports))
	copy(out, s.airports)
	return out
}

// DurationForDistance converts a distance in km to an estimated flight time
// at the fixed cruise speed, decomposed into whole hours and rounded
// remainder minutes.
func DurationForDistance(distanceKM float64) (durationHours float64, hours, minutes int) {
	durationHours = distanceKM / cruiseSpeedKMH
	hours = int(durationHours)
	minutes = int(math.Round((durationHours - float64(hours)) * 60))
	return durationHours, hours, minutes
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
