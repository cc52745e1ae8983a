package common

/*

Buckets are opened as one-offs by whoever needs them and closed by the same
code. Sharing them is more trouble than it's worth since closing a shared
bucket breaks every other holder.

*/

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"

	"gocloud.dev/blob"
)

// OpenSource opens the gocloud.dev/blob bucket where input tables are stored. Callers are responsible
// for closing it.
func OpenSource(ctx context.Context, uri string) (*blob.Bucket, error) {

	bucket, err := blob.OpenBucket(ctx, uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to open source bucket '%s', %w", uri, err)
	}

	return bucket, nil
}

// FingerprintObject returns the hex-encoded SHA-1 hash of the object at key in bucket.
func FingerprintObject(ctx context.Context, bucket *blob.Bucket, key string) (string, error) {

	r, err := bucket.NewReader(ctx, key, nil)

	if err != nil {
		return "", fmt.Errorf("Failed to create reader for %s, %w", key, err)
	}

	defer r.Close()

	h := sha1.New()

	_, err = io.Copy(h, r)

	if err != nil {
		return "", fmt.Errorf("Failed to hash %s, %w", key, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
