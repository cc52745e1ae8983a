package feature

import (
	"fmt"
	"math"
	"time"

	"github.com/sfomuseum/go-movebank-geojson"
)

// testTable returns a table for individual_id with one record for each of times, spaced half a degree apart.
func testTable(individual_id string, times ...time.Time) *movebank.Table {

	tbl := &movebank.Table{
		Source:  "test.csv",
		Records: make([]*movebank.Record, 0),
	}

	for i, ts := range times {

		r := &movebank.Record{
			Longitude:    35.0 + float64(i)*0.5,
			Latitude:     -1.0 - float64(i)*0.5,
			Timestamp:    ts,
			TimestampSet: !ts.IsZero(),
			IndividualID: individual_id,
			StudyName:    "Test Study",
		}

		tbl.Records = append(tbl.Records, r)
	}

	return tbl
}

// appendTables returns a new table with the records of each of tables.
func appendTables(tables ...*movebank.Table) *movebank.Table {

	tbl := &movebank.Table{
		Source: "test.csv",
	}

	for _, t := range tables {
		tbl.Records = append(tbl.Records, t.Records...)
	}

	return tbl
}

func day(month int, d int) time.Time {
	return time.Date(2018, time.Month(month), d, 12, 0, 0, 0, time.UTC)
}

func invalidRecord(individual_id string) *movebank.Record {

	return &movebank.Record{
		Longitude:    math.NaN(),
		Latitude:     -1.0,
		Timestamp:    day(1, 1),
		TimestampSet: true,
		IndividualID: individual_id,
		StudyName:    "Test Study",
	}
}

func hourly(n int) []time.Time {

	times := make([]time.Time, n)

	for i := 0; i < n; i++ {
		times[i] = time.Date(2018, 7, 1, i, 0, 0, 0, time.UTC)
	}

	return times
}

func label(i int) string {
	return fmt.Sprintf("W%02d", i)
}
