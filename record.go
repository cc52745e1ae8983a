package movebank

import (
	"math"
	"time"
)

// Movebank CSV column names.
const (
	ColumnLongitude           = "location-long"
	ColumnLatitude            = "location-lat"
	ColumnTimestamp           = "timestamp"
	ColumnStudyLocalTimestamp = "study-local-timestamp"
	ColumnIndividual          = "individual-local-identifier"
	ColumnStudyName           = "study-name"
)

// UnknownIndividual is assigned to records whose source table has no individual identifier.
const UnknownIndividual = "unknown"

// type Record is a single normalized movement record (one GPS fix).
type Record struct {
	// The longitude of the fix. NaN if the source value was missing or could not be parsed.
	Longitude float64
	// The latitude of the fix. NaN if the source value was missing or could not be parsed.
	Latitude float64
	// The time of the fix (UTC). Only meaningful when TimestampSet is true.
	Timestamp time.Time
	// Whether Timestamp was parsed from the source value. The zero time is a valid (if unlikely) timestamp.
	TimestampSet bool
	// The individual-local-identifier of the animal being tracked.
	IndividualID string
	// The name of the study the record belongs to.
	StudyName string
}

// HasTimestamp reports whether r has a parsed timestamp.
func (r *Record) HasTimestamp() bool {
	return r.TimestampSet
}

// IsValid reports whether r has finite coordinates and a timestamp, which is
// required for it to be included in any geometry.
func (r *Record) IsValid() bool {
	return isFinite(r.Longitude) && isFinite(r.Latitude) && r.HasTimestamp()
}

// type Table is an ordered, read-only collection of normalized records loaded from a single source.
type Table struct {
	// The key (or path) the table was loaded from.
	Source  string
	Records []*Record
}

// Len returns the total number of records in t, valid or not.
func (t *Table) Len() int {
	return len(t.Records)
}

// Valid returns a new slice containing only the records in t that can be used
// to build geometries. Input order is preserved.
func (t *Table) Valid() []*Record {

	valid := make([]*Record, 0, len(t.Records))

	for _, r := range t.Records {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}

	return valid
}

// Dropped returns the number of records in t that will be excluded from geometries.
func (t *Table) Dropped() int {
	return len(t.Records) - len(t.Valid())
}

// Coverage returns the earliest and latest timestamps in t. The final boolean is false if
// no record in t has a timestamp.
func (t *Table) Coverage() (time.Time, time.Time, bool) {

	var min_t time.Time
	var max_t time.Time

	found := false

	for _, r := range t.Records {

		if !r.HasTimestamp() {
			continue
		}

		if !found || r.Timestamp.Before(min_t) {
			min_t = r.Timestamp
		}

		if !found || r.Timestamp.After(max_t) {
			max_t = r.Timestamp
		}

		found = true
	}

	return min_t, max_t, found
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
