package osmtrip

import (
	"github.com/paulmach/orb"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

func lineToCoordinates(line orb.LineString) [][]float64 {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].Lon(), line[i].Lat()}
	}
	return pts2d
}

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(line orb.LineString) (string, error) {
	b, err := geojson.NewLineStringGeometry(lineToCoordinates(line)).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert geometry to geojson format")
	}
	return string(b), nil
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt orb.Point) (string, error) {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon(), pt.Lat()}).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert geometry to geojson format")
	}
	return string(b), nil
}

// PrepareGeoJSONTrip returns GeoJSON FeatureCollection for itinerary: one LineString feature per hop
// with "mode", "from" and "to" properties
func (planner *Planner) PrepareGeoJSONTrip(path []TripStep) (string, error) {
	collection := geojson.NewFeatureCollection()
	for i := 1; i < len(path); i++ {
		line, err := planner.PathGeometry(path[i-1].NodeID, path[i].NodeID)
		if err != nil {
			return "", err
		}
		feature := geojson.NewLineStringFeature(lineToCoordinates(line))
		feature.SetProperty("mode", path[i].Mode.String())
		feature.SetProperty("from", int64(path[i-1].NodeID))
		feature.SetProperty("to", int64(path[i].NodeID))
		collection.AddFeature(feature)
	}
	b, err := collection.MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert trip to geojson format")
	}
	return string(b), nil
}
