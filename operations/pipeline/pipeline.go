package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/sfomuseum/go-movebank-geojson"
	"github.com/sfomuseum/go-movebank-geojson/common"
	"github.com/sfomuseum/go-movebank-geojson/feature"
	"github.com/sfomuseum/go-movebank-geojson/operations/export"
	"github.com/sfomuseum/go-movebank-geojson/operations/load"
	"github.com/whosonfirst/go-reader/v2"
	"github.com/whosonfirst/go-writer/v3"
	"gocloud.dev/blob"
)

// type Document is a FeatureCollection that has been written by the pipeline.
type Document struct {
	// The filename the document was written to, relative to the writer's root.
	Filename string
	// The URI (or path) reported by the writer.
	URI      string
	Features int
}

// type Summary describes the outcome of a pipeline run.
type Summary struct {
	Datasets  []*DatasetSummary
	Documents []*Document
}

// Run loads the datasets defined in cfg, derives point, track, seasonal and sampled feature
// collections from them, writes each one as a GeoJSON document and prints a coverage summary.
// Any error loading or writing data is returned immediately.
func Run(ctx context.Context, cfg *Config) (*Summary, error) {

	if cfg.SourceURI == "" {
		return nil, errors.New("Missing source URI")
	}

	if cfg.WriterURI == "" {
		return nil, errors.New("Missing writer URI")
	}

	bucket, err := common.OpenSource(ctx, cfg.SourceURI)

	if err != nil {
		return nil, err
	}

	defer bucket.Close()

	wr, err := common.NewWriter(ctx, cfg.WriterURI)

	if err != nil {
		return nil, err
	}

	defer wr.Close(ctx)

	p := &pipeline{
		cfg:    cfg,
		bucket: bucket,
		writer: wr,
		summary: &Summary{
			Datasets:  make([]*DatasetSummary, 0),
			Documents: make([]*Document, 0),
		},
	}

	if cfg.Verify {

		reader_uri := cfg.ReaderURI

		if reader_uri == "" {
			reader_uri = cfg.WriterURI
		}

		r, err := common.NewReader(ctx, reader_uri)

		if err != nil {
			return nil, err
		}

		p.reader = r
	}

	err = p.run(ctx)

	if err != nil {
		return nil, err
	}

	err = wr.Flush(ctx)

	if err != nil {
		return nil, fmt.Errorf("Failed to flush writer, %w", err)
	}

	stdout := cfg.Stdout

	if stdout == nil {
		stdout = os.Stdout
	}

	err = PrintSummary(stdout, p.summary, cfg.WriterURI)

	if err != nil {
		return nil, fmt.Errorf("Failed to print summary, %w", err)
	}

	return p.summary, nil
}

type pipeline struct {
	cfg     *Config
	bucket  *blob.Bucket
	writer  writer.Writer
	reader  reader.Reader
	summary *Summary
}

func (p *pipeline) run(ctx context.Context) error {

	cfg := p.cfg

	mara, err := p.load(ctx, cfg.Mara)

	if err != nil {
		return err
	}

	tza, err := p.load(ctx, cfg.Tanzania)

	if err != nil {
		return err
	}

	tsavo, err := p.load(ctx, cfg.Tsavo)

	if err != nil {
		return err
	}

	// Mara

	mara_points := feature.Points(mara, cfg.Mara.Species, 0)
	mara_tracks := feature.Tracks(mara, cfg.Mara.Species)

	err = p.write(ctx, cfg.Outputs.MaraPoints, mara_points)

	if err != nil {
		return err
	}

	err = p.write(ctx, cfg.Outputs.MaraTracks, mara_tracks)

	if err != nil {
		return err
	}

	p.observe(cfg.Mara, mara, mara_points, mara_tracks)

	for _, s := range cfg.Seasons {

		err := p.write(ctx, s.Filename, s.Season.Filter(mara_points))

		if err != nil {
			return err
		}
	}

	// Tanzania background

	tza_sampled := feature.Points(tza, cfg.Tanzania.Species, cfg.TanzaniaStride)

	err = p.write(ctx, cfg.Outputs.TanzaniaSampled, tza_sampled)

	if err != nil {
		return err
	}

	p.observe(cfg.Tanzania, tza, tza_sampled, nil)

	// Tsavo

	tsavo_points := feature.Points(tsavo, cfg.Tsavo.Species, 0)
	tsavo_tracks := feature.Tracks(tsavo, cfg.Tsavo.Species)

	err = p.write(ctx, cfg.Outputs.TsavoPoints, tsavo_points)

	if err != nil {
		return err
	}

	err = p.write(ctx, cfg.Outputs.TsavoTracks, tsavo_tracks)

	if err != nil {
		return err
	}

	p.observe(cfg.Tsavo, tsavo, tsavo_points, tsavo_tracks)

	// Combined preview

	mara_sampled := feature.Points(mara, cfg.Mara.Species, cfg.MaraPreviewStride)
	tsavo_sampled := feature.Points(tsavo, cfg.Tsavo.Species, cfg.TsavoPreviewStride)

	err = p.write(ctx, cfg.Outputs.MaraSampled, mara_sampled)

	if err != nil {
		return err
	}

	err = p.write(ctx, cfg.Outputs.TsavoSampled, tsavo_sampled)

	if err != nil {
		return err
	}

	combined := feature.Merge(mara_sampled, tza_sampled, tsavo_sampled)

	return p.write(ctx, cfg.Outputs.Combined, combined)
}

func (p *pipeline) load(ctx context.Context, ds Dataset) (*movebank.Table, error) {

	logger := slog.Default()
	logger = logger.With("dataset", ds.Label, "key", ds.Key)

	if p.cfg.Fingerprint {

		fp, err := common.FingerprintObject(ctx, p.bucket, ds.Key)

		if err != nil {
			return nil, fmt.Errorf("Failed to fingerprint %s dataset, %w", ds.Label, err)
		}

		logger.Info("Input fingerprint", "sha1", fp)
	}

	tbl, err := load.LoadTable(ctx, p.bucket, ds.Key)

	if err != nil {
		return nil, fmt.Errorf("Failed to load %s dataset, %w", ds.Label, err)
	}

	dropped := tbl.Dropped()

	if dropped > 0 {
		logger.Info("Rows excluded from geometries", "rows", tbl.Len(), "dropped", dropped)
	}

	return tbl, nil
}

func (p *pipeline) write(ctx context.Context, filename string, fc *geojson.FeatureCollection) error {

	uri, err := export.WriteFeatureCollection(ctx, p.writer, filename, fc)

	if err != nil {
		return err
	}

	if p.reader != nil {

		err := export.VerifyFeatureCollection(ctx, p.reader, filename, fc)

		if err != nil {
			return fmt.Errorf("Failed to verify %s, %w", filename, err)
		}
	}

	slog.Info("Saved", "path", uri, "features", len(fc.Features))

	doc := &Document{
		Filename: filename,
		URI:      uri,
		Features: len(fc.Features),
	}

	p.summary.Documents = append(p.summary.Documents, doc)
	return nil
}

func (p *pipeline) observe(ds Dataset, tbl *movebank.Table, points *geojson.FeatureCollection, tracks *geojson.FeatureCollection) {

	s := NewDatasetSummary(ds.Label, tbl, points, tracks)

	slog.Debug("Dataset summary", "dataset", ds.Label, "rows", s.Rows, "dropped", s.Dropped, "tracks", s.Tracks, "track length (m)", s.TrackLength)

	p.summary.Datasets = append(p.summary.Datasets, s)
}
