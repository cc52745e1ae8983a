// Package feature builds GeoJSON Point and LineString features from normalized Movebank tables.
package feature

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON property names assigned to features.
const (
	PropertyTimestamp    = "timestamp"
	PropertyYear         = "year"
	PropertyMonth        = "month"
	PropertySpecies      = "species"
	PropertyIndividualID = "individual_id"
	PropertyStudy        = "study"
)

// Merge returns a new FeatureCollection containing the features of each of fcs, in order.
func Merge(fcs ...*geojson.FeatureCollection) *geojson.FeatureCollection {

	merged := geojson.NewFeatureCollection()

	for _, fc := range fcs {
		merged.Features = append(merged.Features, fc.Features...)
	}

	return merged
}

// Bound returns the bounding box of all the geometries in fc. The boolean is false if fc has no features.
func Bound(fc *geojson.FeatureCollection) (orb.Bound, bool) {

	var b orb.Bound

	if len(fc.Features) == 0 {
		return b, false
	}

	for i, f := range fc.Features {

		if i == 0 {
			b = f.Geometry.Bound()
			continue
		}

		b = b.Union(f.Geometry.Bound())
	}

	return b, true
}

// TrackLength returns the geodesic length, in metres, of a LineString feature. Any other geometry has length 0.
func TrackLength(f *geojson.Feature) float64 {

	ls, ok := f.Geometry.(orb.LineString)

	if !ok {
		return 0
	}

	return geo.Length(ls)
}
