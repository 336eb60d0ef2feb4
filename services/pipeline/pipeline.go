// Package pipeline sequences the full run: fetch and collect both
// sources, aggregate, join, persist, normalize and fit.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"sunburden/lib/scrapers/dalyrate"
	"sunburden/lib/scrapers/sunshine"
	"sunburden/services/dataset"
	"sunburden/services/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/pipeline")

type Config struct {
	DalySourceUrl string `json:"daly_source_url"`
	SunSourceUrl  string `json:"sun_source_url"`
	CacheFilePath string `json:"cache_file_path"`

	Daly  dalyrate.Options   `json:"daly"`
	Sun   sunshine.Options   `json:"sun"`
	Split model.SplitOptions `json:"split"`
}

func DefaultConfig() Config {
	return Config{
		DalySourceUrl: "https://en.wikipedia.org/wiki/List_of_countries_by_disease_burden",
		SunSourceUrl:  "https://en.wikipedia.org/wiki/List_of_cities_by_sunshine_duration",
		CacheFilePath: "joined.csv",
		Daly:          dalyrate.DefaultOptions(),
		Sun:           sunshine.DefaultOptions(),
		Split: model.SplitOptions{
			TestFraction: 0.2,
			Seed:         42,
		},
	}
}

type Pipeline struct {
	config Config
	norm   dataset.KeyNormalizer
	daly   dalyrate.Client
	sun    sunshine.Client
}

// New builds a pipeline over the given configuration. `norm` may be nil,
// country names are then matched on their exact trimmed text.
func New(config Config, norm dataset.KeyNormalizer) Pipeline {
	return Pipeline{
		config: config,
		norm:   norm,
		daly:   dalyrate.NewClient(config.Daly),
		sun:    sunshine.NewClient(config.Sun),
	}
}

type Result struct {
	Dataset    dataset.JoinedDataset
	FromCache  bool
	Normalized dataset.NormalizedDataset
	Fit        model.Fit
}

func (p Pipeline) Run(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "pipeline:Run")
	defer span.End()

	ds, fromCache, err := p.Dataset(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to obtain joined dataset")
		return Result{}, err
	}

	normalized, err := dataset.Normalize(ds)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to normalize")
		return Result{}, err
	}

	fit, err := model.FitLinear(normalized, p.config.Split)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fit model")
		return Result{}, err
	}

	slog.Info(
		"fit complete",
		"records", len(ds),
		"from_cache", fromCache,
		"slope", fit.Slope,
		"intercept", fit.Intercept,
		"r2", fit.RSquared,
	)

	return Result{
		Dataset:    ds,
		FromCache:  fromCache,
		Normalized: normalized,
		Fit:        fit,
	}, nil
}

// Dataset returns the joined dataset, reloading the cache file when it
// exists and rebuilding from the live sources otherwise. The cache file
// is trusted until manually deleted, there is no staleness check.
func (p Pipeline) Dataset(ctx context.Context) (dataset.JoinedDataset, bool, error) {
	ctx, span := tracer.Start(ctx, "pipeline:Dataset")
	defer span.End()

	_, err := os.Stat(p.config.CacheFilePath)
	if err == nil {
		ds, err := dataset.ReadFile(p.config.CacheFilePath)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to reload cache file")
			return nil, false, err
		}
		slog.Info("reloaded joined dataset", "path", p.config.CacheFilePath, "records", len(ds))
		return ds, true, nil
	}
	if !os.IsNotExist(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to stat cache file")
		return nil, false, err
	}

	left, right, err := p.SourceMaps(ctx)
	if err != nil {
		return nil, false, err
	}

	ds := dataset.Join(left, right, p.norm)
	slog.Info(
		"joined datasets",
		"left", len(left),
		"right", len(right),
		"joined", len(ds),
	)

	// the cache is only written once the full join succeeded, a failed
	// run leaves no partial output behind
	err = dataset.WriteFile(p.config.CacheFilePath, ds)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist joined dataset")
		return nil, false, err
	}

	return ds, false, nil
}

// SourceMaps fetches both sources sequentially and aggregates the
// per-city sun observations down to one mean per country.
func (p Pipeline) SourceMaps(ctx context.Context) (map[string]float64, map[string]float64, error) {
	ctx, span := tracer.Start(ctx, "pipeline:SourceMaps")
	defer span.End()

	rates, err := p.daly.FetchRates(ctx, p.config.DalySourceUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to collect daly rates")
		return nil, nil, err
	}
	slog.Info("collected daly rates", "countries", len(rates))

	observations, err := p.sun.FetchSunHours(ctx, p.config.SunSourceUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to collect sun hours")
		return nil, nil, err
	}
	slog.Info("collected sun hours", "countries", len(observations))

	return rates, dataset.Aggregate(observations), nil
}
