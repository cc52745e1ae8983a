package feature

import (
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sfomuseum/go-movebank-geojson"
)

// Tracks returns a FeatureCollection with one LineString feature for each individual in t, ordered
// by individual. Coordinates are in time order. Individuals with fewer than two valid records are skipped.
func Tracks(t *movebank.Table, species string) *geojson.FeatureCollection {

	groups := make(map[string][]*movebank.Record)

	for _, r := range t.Valid() {
		groups[r.IndividualID] = append(groups[r.IndividualID], r)
	}

	ids := make([]string, 0, len(groups))

	for id := range groups {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	fc := geojson.NewFeatureCollection()

	for _, id := range ids {

		records := groups[id]

		if len(records) < 2 {
			continue
		}

		slices.SortStableFunc(records, func(a, b *movebank.Record) int {
			return a.Timestamp.Compare(b.Timestamp)
		})

		ls := make(orb.LineString, len(records))

		for i, r := range records {
			ls[i] = orb.Point{r.Longitude, r.Latitude}
		}

		f := geojson.NewFeature(ls)
		f.Properties[PropertySpecies] = species
		f.Properties[PropertyIndividualID] = id

		fc.Append(f)
	}

	return fc
}
