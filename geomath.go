package osmtrip

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const metersInMile = 1609.344

var compassDirections = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// greatCircleDistance returns distance between two geo-points (miles)
func greatCircleDistance(p, q orb.Point) float64 {
	return geo.DistanceHaversine(p, q) / metersInMile
}

// getSphericalLength returns length for given line (miles)
func getSphericalLength(line orb.LineString) float64 {
	return geo.LengthHaversign(line) / metersInMile
}

// initialBearing returns bearing (degrees in [0, 360)) to follow from p to reach q along great circle
func initialBearing(p, q orb.Point) float64 {
	return math.Mod(geo.Bearing(p, q)+360.0, 360.0)
}

// compassDirection converts bearing to one of eight compass points
func compassDirection(bearing float64) string {
	idx := int(math.Floor(math.Mod(bearing+22.5, 360.0) / 45.0))
	if idx < 0 {
		idx += len(compassDirections)
	}
	return compassDirections[idx%len(compassDirections)]
}

// splitDMS splits absolute value of angle into degrees, minutes and rounded seconds
func splitDMS(angle float64) (int, int, int) {
	totalSeconds := int(math.Round(math.Abs(angle) * 3600.0))
	return totalSeconds / 3600, (totalSeconds % 3600) / 60, totalSeconds % 60
}

// formatDMS returns degrees-minutes-seconds representation of location, e.g. 38d 32' 31" N, 121d 45' 2" W
func formatDMS(lat, lon float64) string {
	latHemisphere := "N"
	if lat < 0 {
		latHemisphere = "S"
	}
	lonHemisphere := "E"
	if lon < 0 {
		lonHemisphere = "W"
	}
	latD, latM, latS := splitDMS(lat)
	lonD, lonM, lonS := splitDMS(lon)
	return fmt.Sprintf("%dd %d' %d\" %s, %dd %d' %d\" %s", latD, latM, latS, latHemisphere, lonD, lonM, lonS, lonHemisphere)
}
