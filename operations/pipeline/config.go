package pipeline

import (
	"io"
	"os"

	"github.com/sfomuseum/go-movebank-geojson/feature"
)

// type Dataset describes a single Movebank export to load.
type Dataset struct {
	// A short label used in logs and the coverage summary.
	Label string
	// The key of the CSV object in the source bucket.
	Key string
	// The species label assigned to features derived from the dataset.
	Species string
}

// type SeasonalOutput maps a season to the document its points are written to.
type SeasonalOutput struct {
	Season   feature.Season
	Filename string
}

// type Outputs defines the filenames of the (non-seasonal) documents produced by the pipeline.
type Outputs struct {
	MaraPoints      string
	MaraTracks      string
	MaraSampled     string
	TanzaniaSampled string
	TsavoPoints     string
	TsavoTracks     string
	TsavoSampled    string
	Combined        string
}

// type Config defines the inputs, outputs and sampling policy for a pipeline run.
type Config struct {
	// A valid gocloud.dev/blob URI where input tables are stored.
	SourceURI string
	// A valid whosonfirst/go-writer URI where documents are written.
	WriterURI string
	// An optional whosonfirst/go-reader URI used to read documents back when Verify is true. If empty WriterURI is used.
	ReaderURI string
	// The primary wildebeest dataset.
	Mara Dataset
	// The secondary wildebeest dataset, used as a sampled background.
	Tanzania Dataset
	// The lion dataset.
	Tsavo Dataset
	// Seasonal subsets of the primary wildebeest points.
	Seasons []*SeasonalOutput
	// Stride used to sample the secondary wildebeest dataset.
	TanzaniaStride int
	// Stride used to sample the primary wildebeest dataset for the combined preview.
	MaraPreviewStride int
	// Stride used to sample the lion dataset for the combined preview.
	TsavoPreviewStride int
	Outputs            Outputs
	// Read each document back after it is written and compare feature counts.
	Verify bool
	// Log a SHA-1 fingerprint of each input table.
	Fingerprint bool
	// Where the coverage summary is printed. Defaults to os.Stdout.
	Stdout io.Writer
}

// DefaultConfig returns a Config for the Greater Mara wildebeest, Tarangire-Manyara wildebeest and
// Tsavo lion studies. SourceURI and WriterURI are left empty and must be assigned by the caller.
func DefaultConfig() *Config {

	cfg := &Config{
		Mara: Dataset{
			Label:   "Mara",
			Key:     "White-bearded wildebeest (Connochaetes taurinus) - Greater Mara Ecosystem (2017-2021).csv",
			Species: "Wildebeest",
		},
		Tanzania: Dataset{
			Label:   "Tanzania",
			Key:     "Wildebeest (Eastern white bearded) Morrison Tarangire-Manyara Tanzania.csv",
			Species: "Wildebeest",
		},
		Tsavo: Dataset{
			Label:   "Tsavo Lion",
			Key:     "Tsavo Lion Study.csv",
			Species: "Lion",
		},
		Seasons: []*SeasonalOutput{
			{Season: feature.DrySeason, Filename: "wildebeest_mara_dry_season_points.geojson"},
			{Season: feature.ShortRains, Filename: "wildebeest_mara_short_rains_points.geojson"},
			{Season: feature.WetSeason, Filename: "wildebeest_mara_wet_season_points.geojson"},
		},
		TanzaniaStride:     3,
		MaraPreviewStride:  10,
		TsavoPreviewStride: 5,
		Outputs: Outputs{
			MaraPoints:      "wildebeest_mara_2017_2021_points.geojson",
			MaraTracks:      "wildebeest_mara_2017_2021_tracks.geojson",
			MaraSampled:     "wildebeest_mara_2017_2021_points_sampled.geojson",
			TanzaniaSampled: "wildebeest_tanzania_points_sampled.geojson",
			TsavoPoints:     "tsavo_lion_points.geojson",
			TsavoTracks:     "tsavo_lion_tracks.geojson",
			TsavoSampled:    "tsavo_lion_points_sampled.geojson",
			Combined:        "combined_wildebeest_tsavo_points_sampled.geojson",
		},
		Stdout: os.Stdout,
	}

	return cfg
}
