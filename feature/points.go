package feature

import (
	"cmp"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sfomuseum/go-movebank-geojson"
)

// Points returns a FeatureCollection with one Point feature for each valid record in t, ordered by
// individual and then time. If stride is greater than 1 only every stride-th record (by position
// in that order, starting with the first) is included.
func Points(t *movebank.Table, species string, stride int) *geojson.FeatureCollection {

	records := t.Valid()

	slices.SortStableFunc(records, func(a, b *movebank.Record) int {

		if c := cmp.Compare(a.IndividualID, b.IndividualID); c != 0 {
			return c
		}

		return a.Timestamp.Compare(b.Timestamp)
	})

	fc := geojson.NewFeatureCollection()

	for i, r := range records {

		if stride > 1 && i%stride != 0 {
			continue
		}

		fc.Append(NewPointFeature(r, species))
	}

	return fc
}

// NewPointFeature returns a new Point feature for r. r is expected to be valid.
func NewPointFeature(r *movebank.Record, species string) *geojson.Feature {

	f := geojson.NewFeature(orb.Point{r.Longitude, r.Latitude})

	f.Properties[PropertyTimestamp] = movebank.FormatTimestamp(r.Timestamp)
	f.Properties[PropertyYear] = r.Timestamp.Year()
	f.Properties[PropertyMonth] = int(r.Timestamp.Month())
	f.Properties[PropertySpecies] = species
	f.Properties[PropertyIndividualID] = r.IndividualID
	f.Properties[PropertyStudy] = r.StudyName

	return f
}
