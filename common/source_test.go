package common

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestFingerprintObject(t *testing.T) {

	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	err := bucket.WriteAll(ctx, "hello.csv", []byte("hello world"), nil)
	require.NoError(t, err)

	fp, err := FingerprintObject(ctx, bucket, "hello.csv")
	require.NoError(t, err)

	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", fp)

	_, err = FingerprintObject(ctx, bucket, "missing.csv")
	assert.Error(t, err)
}

func TestNewWriterCreatesRoot(t *testing.T) {

	ctx := context.Background()

	root := filepath.Join(t.TempDir(), "data", "geojson")

	_, err := NewWriter(ctx, "fs://"+root)
	require.NoError(t, err)

	assert.DirExists(t, root)
}
