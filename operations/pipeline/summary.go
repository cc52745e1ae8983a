package pipeline

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sfomuseum/go-movebank-geojson"
	"github.com/sfomuseum/go-movebank-geojson/feature"
)

// Layout used to print coverage timestamps.
const coverageLayout = "2006-01-02 15:04:05"

// type DatasetSummary describes the row count and temporal coverage of a dataset.
type DatasetSummary struct {
	Label string
	// The total number of rows in the dataset.
	Rows int
	// The number of rows excluded from geometries.
	Dropped int
	// The earliest and latest timestamps, formatted for display. "NaT" if the dataset has no timestamps.
	Start string
	End   string
	// The bounding box of the points written for the dataset.
	Bound orb.Bound
	// The number of tracks derived from the dataset, and their combined geodesic length in metres.
	Tracks      int
	TrackLength float64
}

// NewDatasetSummary returns a DatasetSummary for tbl. tracks may be nil.
func NewDatasetSummary(label string, tbl *movebank.Table, points *geojson.FeatureCollection, tracks *geojson.FeatureCollection) *DatasetSummary {

	s := &DatasetSummary{
		Label:   label,
		Rows:    tbl.Len(),
		Dropped: tbl.Dropped(),
		Start:   "NaT",
		End:     "NaT",
	}

	start, end, ok := tbl.Coverage()

	if ok {
		s.Start = start.Format(coverageLayout)
		s.End = end.Format(coverageLayout)
	}

	if points != nil {

		b, ok := feature.Bound(points)

		if ok {
			s.Bound = b
		}
	}

	if tracks != nil {

		s.Tracks = len(tracks.Features)

		for _, f := range tracks.Features {
			s.TrackLength += feature.TrackLength(f)
		}
	}

	return s
}

// PrintSummary writes a human-readable version of s to wr.
func PrintSummary(wr io.Writer, s *Summary, target string) error {

	_, err := fmt.Fprintln(wr, "\n=== Summary ===")

	if err != nil {
		return err
	}

	for _, ds := range s.Datasets {

		_, err := fmt.Fprintf(wr, "%s: %d rows (%d dropped) time: (%s, %s)\n", ds.Label, ds.Rows, ds.Dropped, ds.Start, ds.End)

		if err != nil {
			return err
		}

		if ds.Rows > ds.Dropped {

			b := ds.Bound
			_, err := fmt.Fprintf(wr, "  bbox: %.4f,%.4f,%.4f,%.4f\n", b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat())

			if err != nil {
				return err
			}
		}

		if ds.Tracks > 0 {

			_, err := fmt.Fprintf(wr, "  %d tracks, %.1f km\n", ds.Tracks, ds.TrackLength/1000)

			if err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintf(wr, "%d GeoJSON documents saved under: %s\n", len(s.Documents), target)
	return err
}
