package pipeline

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/export"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/feature"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/model"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/youtube"
)

// Runner executes one trending pass: fetch, export, derive. Records
// hand off between stages in memory; the export file is written for
// downstream consumers, not read back mid-run. The runner holds no
// state between runs; everything a pass produces lives in its Result.
// Concurrent runs sharing an export path race on the file, which
// mirrors the fixed-name export contract.
type Runner struct {
	region     string
	baseURL    string
	exportPath string
	httpClient *http.Client
	loc        *time.Location
}

// NewRunner wires a runner for one region and export path. baseURL and
// httpClient may be zero-valued to use the platform defaults; loc is
// the timezone all publish-time features are derived in, UTC when nil.
func NewRunner(region, baseURL, exportPath string, httpClient *http.Client, loc *time.Location) *Runner {
	if loc == nil {
		loc = time.UTC
	}
	return &Runner{
		region:     region,
		baseURL:    baseURL,
		exportPath: exportPath,
		httpClient: httpClient,
		loc:        loc,
	}
}

// Result is one finished pipeline pass.
type Result struct {
	Records    []model.VideoRecord `json:"records"`
	Categories model.CategoryMap   `json:"categories"`
	FetchedAt  time.Time           `json:"fetched_at"`
	ExportPath string              `json:"export_path"`
}

// Run turns a credential and a result cap into a finished table. The
// stages run in a fixed order and any stage failure aborts the whole
// pass, wrapped with the stage name; only the documented field-level
// defaults are recovered locally. No retries anywhere: a transient
// network failure fails the run.
func (r *Runner) Run(ctx context.Context, apiKey string, maxResults int) (*Result, error) {
	fetchedAt := time.Now().UTC()
	client := youtube.NewClient(apiKey, r.region, r.baseURL, r.httpClient)

	records, err := client.FetchTrending(ctx, maxResults)
	if err != nil {
		return nil, fmt.Errorf("fetch trending: %w", err)
	}
	log.Printf("pipeline: fetched %d trending videos for region %s", len(records), r.region)

	if err := export.Write(r.exportPath, records); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}

	categories, err := client.FetchCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	records, err = feature.NewDeriver(categories, r.loc).DeriveAll(records)
	if err != nil {
		return nil, fmt.Errorf("derive features: %w", err)
	}
	log.Printf("pipeline: derived features for %d records (%d categories)", len(records), len(categories))

	return &Result{
		Records:    records,
		Categories: categories,
		FetchedAt:  fetchedAt,
		ExportPath: r.exportPath,
	}, nil
}

// Analyze re-derives features from the export file left by an earlier
// run, without refetching the trending listing. Categories are still
// fetched live, so a credential is required; FetchedAt carries the
// export file's modification time, which is when the listing was
// actually pulled. A missing export file surfaces as fs.ErrNotExist
// wrapped under the reload stage.
func (r *Runner) Analyze(ctx context.Context, apiKey string) (*Result, error) {
	info, err := os.Stat(r.exportPath)
	if err != nil {
		return nil, fmt.Errorf("reload csv: %w", err)
	}

	records, err := export.Read(r.exportPath)
	if err != nil {
		return nil, fmt.Errorf("reload csv: %w", err)
	}

	client := youtube.NewClient(apiKey, r.region, r.baseURL, r.httpClient)
	categories, err := client.FetchCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	records, err = feature.NewDeriver(categories, r.loc).DeriveAll(records)
	if err != nil {
		return nil, fmt.Errorf("derive features: %w", err)
	}
	log.Printf("pipeline: reanalyzed %d records from %s", len(records), r.exportPath)

	return &Result{
		Records:    records,
		Categories: categories,
		FetchedAt:  info.ModTime().UTC(),
		ExportPath: r.exportPath,
	}, nil
}
