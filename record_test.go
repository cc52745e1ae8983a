package movebank

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordIsValid(t *testing.T) {

	ts := time.Date(2018, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Record{Longitude: 35.0, Latitude: -1.5, Timestamp: ts, TimestampSet: true}).IsValid())
	assert.False(t, (&Record{Longitude: math.NaN(), Latitude: -1.5, Timestamp: ts, TimestampSet: true}).IsValid())
	assert.False(t, (&Record{Longitude: 35.0, Latitude: math.Inf(1), Timestamp: ts, TimestampSet: true}).IsValid())
	assert.False(t, (&Record{Longitude: 35.0, Latitude: -1.5}).IsValid())
	assert.False(t, (&Record{Longitude: 35.0, Latitude: -1.5, Timestamp: ts}).IsValid())

	// the zero time is a timestamp like any other once it has been parsed
	assert.True(t, (&Record{Longitude: 35.0, Latitude: -1.5, TimestampSet: true}).IsValid())
}

func TestTableCoverage(t *testing.T) {

	early := time.Date(2017, 5, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)

	tbl := &Table{
		Source: "test.csv",
		Records: []*Record{
			{Longitude: 35, Latitude: -1, Timestamp: late, TimestampSet: true},
			{Longitude: math.NaN(), Latitude: -1, Timestamp: early, TimestampSet: true},
			{Longitude: 35, Latitude: -1},
		},
	}

	min_t, max_t, ok := tbl.Coverage()

	assert.True(t, ok)
	assert.Equal(t, early, min_t)
	assert.Equal(t, late, max_t)

	assert.Equal(t, 3, tbl.Len())
	assert.Len(t, tbl.Valid(), 1)
	assert.Equal(t, 2, tbl.Dropped())

	empty := &Table{Source: "empty.csv"}
	_, _, ok = empty.Coverage()
	assert.False(t, ok)
}
