package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/whosonfirst/go-ioutil"
	"github.com/whosonfirst/go-reader/v2"
	"github.com/whosonfirst/go-writer/v3"
)

// WriteFeatureCollection encodes fc as a GeoJSON document and writes it to path using wr, replacing
// any existing document. The document's top-level "name" member is set to the base name of path
// (without extension). It returns the URI (or path) the document was written to.
func WriteFeatureCollection(ctx context.Context, wr writer.Writer, path string, fc *geojson.FeatureCollection) (string, error) {

	body, err := fc.MarshalJSON()

	if err != nil {
		return "", fmt.Errorf("Failed to marshal feature collection for %s, %w", path, err)
	}

	fname := filepath.Base(path)
	name := strings.TrimSuffix(fname, filepath.Ext(fname))

	body, err = sjson.SetBytes(body, "name", name)

	if err != nil {
		return "", fmt.Errorf("Failed to assign name property for %s, %w", path, err)
	}

	br := bytes.NewReader(body)
	fh, err := ioutil.NewReadSeekCloser(br)

	if err != nil {
		return "", fmt.Errorf("Failed to create ReadSeekCloser for %s, %w", path, err)
	}

	_, err = wr.Write(ctx, path, fh)

	if err != nil {
		return "", fmt.Errorf("Failed to write %s, %w", path, err)
	}

	uri := wr.WriterURI(ctx, path)

	slog.Debug("Wrote feature collection", "path", uri, "features", len(fc.Features))
	return uri, nil
}

// ReadFeatureCollection reads the GeoJSON document at path using r. It returns both the decoded
// FeatureCollection and the raw document body.
func ReadFeatureCollection(ctx context.Context, r reader.Reader, path string) (*geojson.FeatureCollection, []byte, error) {

	fh, err := r.Read(ctx, path)

	if err != nil {
		return nil, nil, fmt.Errorf("Failed to open %s for reading, %w", path, err)
	}

	defer fh.Close()

	body, err := io.ReadAll(fh)

	if err != nil {
		return nil, nil, fmt.Errorf("Failed to read %s, %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)

	if err != nil {
		return nil, nil, fmt.Errorf("Failed to unmarshal %s, %w", path, err)
	}

	return fc, body, nil
}

// VerifyFeatureCollection reads the document at path back using r and ensures it contains the same
// number of features as fc.
func VerifyFeatureCollection(ctx context.Context, r reader.Reader, path string, fc *geojson.FeatureCollection) error {

	_, body, err := ReadFeatureCollection(ctx, r, path)

	if err != nil {
		return err
	}

	count_rsp := gjson.GetBytes(body, "features.#")

	if !count_rsp.Exists() {
		return fmt.Errorf("%s is missing features", path)
	}

	count := count_rsp.Int()

	if count != int64(len(fc.Features)) {
		return fmt.Errorf("%s has %d features, expected %d", path, count, len(fc.Features))
	}

	return nil
}
