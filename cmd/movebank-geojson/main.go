// movebank-geojson converts Movebank GPS tracking exports for the Greater Mara wildebeest, Tarangire-Manyara
// wildebeest and Tsavo lion studies into GeoJSON point, track, seasonal and sampled documents.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"path/filepath"

	"github.com/sfomuseum/go-movebank-geojson/operations/pipeline"
	_ "gocloud.dev/blob/fileblob"
)

func main() {

	defaults := pipeline.DefaultConfig()

	source := flag.String("source", ".", "The directory containing Movebank CSV files.")
	target := flag.String("target", "data", "The directory where GeoJSON documents are written.")

	source_uri := flag.String("source-uri", "", "A valid gocloud.dev/blob URI where Movebank CSV files are stored. If present -source is ignored.")
	writer_uri := flag.String("writer-uri", "", "A valid whosonfirst/go-writer URI where GeoJSON documents are written. If present -target is ignored.")

	mara := flag.String("mara", defaults.Mara.Key, "The name of the Greater Mara wildebeest CSV file.")
	tanzania := flag.String("tanzania", defaults.Tanzania.Key, "The name of the Tarangire-Manyara wildebeest CSV file.")
	tsavo := flag.String("tsavo", defaults.Tsavo.Key, "The name of the Tsavo lion CSV file.")

	verify := flag.Bool("verify", false, "Read each GeoJSON document back after writing it and compare feature counts.")
	fingerprint := flag.Bool("fingerprint", false, "Log a SHA-1 fingerprint of each input file.")
	verbose := flag.Bool("verbose", false, "Enable verbose (debug) logging.")

	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx := context.Background()

	cfg := defaults
	cfg.SourceURI = *source_uri
	cfg.WriterURI = *writer_uri
	cfg.Mara.Key = *mara
	cfg.Tanzania.Key = *tanzania
	cfg.Tsavo.Key = *tsavo
	cfg.Verify = *verify
	cfg.Fingerprint = *fingerprint

	if cfg.SourceURI == "" {

		abs_source, err := filepath.Abs(*source)

		if err != nil {
			log.Fatalf("Failed to derive absolute path for %s, %v", *source, err)
		}

		cfg.SourceURI = fmt.Sprintf("file://%s", filepath.ToSlash(abs_source))
	}

	if cfg.WriterURI == "" {

		abs_target, err := filepath.Abs(*target)

		if err != nil {
			log.Fatalf("Failed to derive absolute path for %s, %v", *target, err)
		}

		cfg.WriterURI = fmt.Sprintf("fs://%s", abs_target)
	}

	slog.Debug("Run pipeline", "source", cfg.SourceURI, "writer", cfg.WriterURI)

	_, err := pipeline.Run(ctx, cfg)

	if err != nil {
		log.Fatalf("Failed to run pipeline, %v", err)
	}
}
