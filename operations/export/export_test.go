package export

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb/geojson"
	"github.com/sfomuseum/go-movebank-geojson"
	"github.com/sfomuseum/go-movebank-geojson/common"
	"github.com/sfomuseum/go-movebank-geojson/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func testTable() *movebank.Table {

	return &movebank.Table{
		Source: "test.csv",
		Records: []*movebank.Record{
			{Longitude: 35.25, Latitude: -1.5, Timestamp: time.Date(2018, 7, 1, 4, 0, 0, 0, time.UTC), TimestampSet: true, IndividualID: "W1", StudyName: "Mara"},
			{Longitude: 35.5, Latitude: -1.75, Timestamp: time.Date(2018, 8, 1, 4, 0, 0, 0, time.UTC), TimestampSet: true, IndividualID: "W1", StudyName: "Mara"},
			{Longitude: 36.0, Latitude: -2.0, Timestamp: time.Date(2018, 8, 2, 4, 0, 0, 0, time.UTC), TimestampSet: true, IndividualID: "W2", StudyName: "Mara"},
		},
	}
}

func TestWriteFeatureCollectionRoundTrip(t *testing.T) {

	ctx := context.Background()

	root := t.TempDir()

	wr, err := common.NewWriter(ctx, "fs://"+root)
	require.NoError(t, err)

	r, err := common.NewReader(ctx, "fs://"+root)
	require.NoError(t, err)

	collections := map[string]*geojson.FeatureCollection{
		"points.geojson": feature.Points(testTable(), "Wildebeest", 0),
		"tracks.geojson": feature.Tracks(testTable(), "Wildebeest"),
		"empty.geojson":  geojson.NewFeatureCollection(),
	}

	for path, fc := range collections {

		uri, err := WriteFeatureCollection(ctx, wr, path, fc)
		require.NoError(t, err)

		assert.FileExists(t, uri)

		// compare against what encoding/decoding fc in memory yields so that numeric
		// property types (float64 after decoding) line up

		enc, err := fc.MarshalJSON()
		require.NoError(t, err)

		expected, err := geojson.UnmarshalFeatureCollection(enc)
		require.NoError(t, err)

		actual, body, err := ReadFeatureCollection(ctx, r, path)
		require.NoError(t, err)

		require.Len(t, actual.Features, len(fc.Features))

		if diff := cmp.Diff(expected.Features, actual.Features); diff != "" {
			t.Fatalf("Round trip for %s mismatch (-want +got):\n%s", path, diff)
		}

		name := gjson.GetBytes(body, "name")
		assert.Equal(t, path[:len(path)-len(".geojson")], name.String())

		err = VerifyFeatureCollection(ctx, r, path, fc)
		assert.NoError(t, err)
	}
}

func TestWriteFeatureCollectionOverwrites(t *testing.T) {

	ctx := context.Background()

	root := t.TempDir()

	wr, err := common.NewWriter(ctx, "fs://"+root)
	require.NoError(t, err)

	r, err := common.NewReader(ctx, "fs://"+root)
	require.NoError(t, err)

	full := feature.Points(testTable(), "Wildebeest", 0)
	sampled := feature.Points(testTable(), "Wildebeest", 2)

	_, err = WriteFeatureCollection(ctx, wr, "points.geojson", full)
	require.NoError(t, err)

	uri, err := WriteFeatureCollection(ctx, wr, "points.geojson", sampled)
	require.NoError(t, err)

	body, err := os.ReadFile(uri)
	require.NoError(t, err)

	assert.Equal(t, int64(2), gjson.GetBytes(body, "features.#").Int())

	err = VerifyFeatureCollection(ctx, r, "points.geojson", full)
	assert.Error(t, err)
}
