package feature

import (
	"github.com/paulmach/orb/geojson"
)

// type Season is a named set of calendar months.
type Season struct {
	Name   string
	Months []int
}

var (
	// June through September.
	DrySeason = Season{Name: "dry", Months: []int{6, 7, 8, 9}}
	// October and November.
	ShortRains = Season{Name: "short-rains", Months: []int{10, 11}}
	// December through March.
	WetSeason = Season{Name: "wet", Months: []int{12, 1, 2, 3}}
)

// Filter returns a new FeatureCollection containing the features in fc that fall in s.
func (s Season) Filter(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	return FilterByMonths(fc, s.Months...)
}

// FilterByMonths returns a new FeatureCollection containing the features in fc whose "month"
// property is one of months. Order is preserved and fc is not modified.
func FilterByMonths(fc *geojson.FeatureCollection, months ...int) *geojson.FeatureCollection {

	lookup := make(map[int]bool)

	for _, m := range months {
		lookup[m] = true
	}

	filtered := geojson.NewFeatureCollection()

	for _, f := range fc.Features {

		m, ok := featureMonth(f)

		if ok && lookup[m] {
			filtered.Append(f)
		}
	}

	return filtered
}

// featureMonth returns the "month" property of f. Values decoded from JSON are float64.
func featureMonth(f *geojson.Feature) (int, bool) {

	switch v := f.Properties[PropertyMonth].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
