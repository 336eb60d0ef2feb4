// Package dalyrate scrapes the disease-burden table that maps each
// country to its DALY rate.
package dalyrate

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sunburden/lib/htmltable"
	"sunburden/lib/telemetry"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/dalyrate")

type Options struct {
	Table htmltable.Selection `json:"table"`
	// column holding the country name
	CountryColumn int `json:"country_column"`
	// column holding the DALY rate
	RateColumn int `json:"rate_column"`
}

// DefaultOptions matches the page snapshot the pipeline was written
// against: first wikitable, one header row, rank/country/rate columns.
func DefaultOptions() Options {
	return Options{
		Table: htmltable.Selection{
			Selector:   "table.wikitable",
			HeaderRows: 1,
		},
		CountryColumn: 1,
		RateColumn:    2,
	}
}

type Client struct {
	http *resty.Client
	opts Options
}

func NewClient(opts Options) Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/dalyrate/http")

	return Client{
		http: client,
		opts: opts,
	}
}

// FetchRates scrapes the rate table into a country -> rate map. A country
// appearing on more than one row keeps the value of the last row.
func (c Client) FetchRates(ctx context.Context, link string) (map[string]float64, error) {
	ctx, span := tracer.Start(ctx, "client:FetchRates")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("fetch %s: status %s", link, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "non-success status")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	rows, err := htmltable.Rows(doc, c.opts.Table)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to locate rate table")
		return nil, err
	}

	rates := make(map[string]float64, len(rows))
	for _, row := range rows {
		country, err := row.Cell(c.opts.CountryColumn)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "country cell missing")
			return nil, err
		}
		country = strings.TrimSpace(country)

		text, err := row.Cell(c.opts.RateColumn)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rate cell missing")
			return nil, fmt.Errorf("country %q: %w", country, err)
		}
		rate, err := htmltable.ParseNumber(text)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rate cell not numeric")
			return nil, fmt.Errorf("country %q: %w", country, err)
		}

		rates[country] = rate
	}

	return rates, nil
}
