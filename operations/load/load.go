package load

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/sfomuseum/go-movebank-geojson"
	"gocloud.dev/blob"
)

// LoadTableFromURI opens the gocloud.dev/blob bucket at bucket_uri, loads the CSV object at key and
// closes the bucket again.
func LoadTableFromURI(ctx context.Context, bucket_uri string, key string) (*movebank.Table, error) {

	bucket, err := blob.OpenBucket(ctx, bucket_uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to open bucket '%s', %w", bucket_uri, err)
	}

	defer bucket.Close()

	return LoadTable(ctx, bucket, key)
}

// LoadTable reads the Movebank CSV object at key from bucket and returns a normalized movebank.Table.
func LoadTable(ctx context.Context, bucket *blob.Bucket, key string) (*movebank.Table, error) {

	r, err := bucket.NewReader(ctx, key, nil)

	if err != nil {
		return nil, fmt.Errorf("Failed to create reader for %s, %w", key, err)
	}

	defer r.Close()

	return LoadTableWithReader(ctx, key, r)
}

// LoadTableWithReader reads Movebank CSV data from r and returns a normalized movebank.Table. key is
// the name the data was read from and is used in errors and to derive a default study name.
//
// A missing longitude, latitude or timestamp column is reported as a *movebank.MissingColumnError.
// Individual values that can not be parsed do not cause an error; the affected record is kept but
// will not be valid.
func LoadTableWithReader(ctx context.Context, key string, r io.Reader) (*movebank.Table, error) {

	fname := filepath.Base(key)
	stem := strings.TrimSuffix(fname, filepath.Ext(fname))

	logger := slog.Default()
	logger = logger.With("source", key)

	csv_r := csv.NewReader(r)

	header, err := csv_r.Read()

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Failed to read header for %s, %w", key, err)
	}

	columns := make(map[string]int)

	for i, name := range header {

		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}

		name = strings.TrimSpace(name)

		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	ts_column := movebank.ColumnTimestamp

	_, has_ts := columns[movebank.ColumnTimestamp]
	_, has_local_ts := columns[movebank.ColumnStudyLocalTimestamp]

	if !has_ts && has_local_ts {
		logger.Debug("Using fallback timestamp column", "column", movebank.ColumnStudyLocalTimestamp)
		ts_column = movebank.ColumnStudyLocalTimestamp
	}

	required := []string{
		movebank.ColumnLongitude,
		movebank.ColumnLatitude,
		ts_column,
	}

	for _, col := range required {

		if _, ok := columns[col]; !ok {
			return nil, &movebank.MissingColumnError{
				Source: fname,
				Column: col,
			}
		}
	}

	lon_idx := columns[movebank.ColumnLongitude]
	lat_idx := columns[movebank.ColumnLatitude]
	ts_idx := columns[ts_column]

	id_idx, has_id := columns[movebank.ColumnIndividual]
	study_idx, has_study := columns[movebank.ColumnStudyName]

	records := make([]*movebank.Record, 0)
	unparsed := 0

	for {

		row, err := csv_r.Read()

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("Failed to read row from %s, %w", key, err)
		}

		rec := &movebank.Record{
			Longitude:    movebank.ParseCoordinate(row[lon_idx]),
			Latitude:     movebank.ParseCoordinate(row[lat_idx]),
			IndividualID: movebank.UnknownIndividual,
			StudyName:    stem,
		}

		ts, ok := movebank.ParseTimestamp(row[ts_idx])

		if ok {
			rec.Timestamp = ts
			rec.TimestampSet = true
		} else {
			unparsed += 1
		}

		if has_id {

			if v := strings.TrimSpace(row[id_idx]); v != "" {
				rec.IndividualID = v
			}
		}

		if has_study {

			if v := strings.TrimSpace(row[study_idx]); v != "" {
				rec.StudyName = v
			}
		}

		records = append(records, rec)
	}

	tbl := &movebank.Table{
		Source:  key,
		Records: records,
	}

	logger.Debug("Loaded table", "rows", tbl.Len(), "dropped", tbl.Dropped(), "unparsed timestamps", unparsed)
	return tbl, nil
}
