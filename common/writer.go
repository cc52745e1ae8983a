package common

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/whosonfirst/go-writer/v3"
)

// NewWriter returns a whosonfirst/go-writer.Writer instance for uri. If uri is a "fs://" URI the
// root directory is created first, if necessary.
func NewWriter(ctx context.Context, uri string) (writer.Writer, error) {

	u, err := url.Parse(uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse writer URI '%s', %w", uri, err)
	}

	if u.Scheme == "fs" && u.Path != "" {

		err := os.MkdirAll(u.Path, 0755)

		if err != nil {
			return nil, fmt.Errorf("Failed to create %s, %w", u.Path, err)
		}
	}

	wr, err := writer.NewWriter(ctx, uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to create writer for '%s', %w", uri, err)
	}

	return wr, nil
}
