package common

import (
	"context"
	"fmt"

	"github.com/whosonfirst/go-reader/v2"
)

// NewReader returns a whosonfirst/go-reader.Reader instance for uri. For the "fs://" scheme the
// same URI used to write documents can be used to read them back.
func NewReader(ctx context.Context, uri string) (reader.Reader, error) {

	r, err := reader.NewReader(ctx, uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to create reader for '%s', %w", uri, err)
	}

	return r, nil
}
