package usecase

import (
	"math"

	"huhu/internal/domain/entity"
)

const earthRadiusKm = 6371.0

// Distance is the great-circle distance in kilometres rounded to one decimal.
// Zero coordinates count as unknown, so nil is returned.
func Distance(from, to *entity.Coordinates) *float64 {
	if from == nil || to == nil ||
		from.Latitude == 0 || from.Longitude == 0 || to.Latitude == 0 || to.Longitude == 0 {
		return nil
	}

	rad := math.Pi / 180
	dLat := (to.Latitude - from.Latitude) * rad
	dLon := (to.Longitude - from.Longitude) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Latitude*rad)*math.Cos(to.Latitude*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	km := math.Round(earthRadiusKm*c*10) / 10
	return &km
}
