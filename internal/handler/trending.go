package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/middleware"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/model"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/pipeline"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/stats"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/youtube"
)

type TrendingHandler struct {
	runner      *pipeline.Runner
	fallbackKey string
	defaultMax  int
}

func NewTrendingHandler(runner *pipeline.Runner, fallbackKey string, defaultMax int) *TrendingHandler {
	return &TrendingHandler{runner: runner, fallbackKey: fallbackKey, defaultMax: defaultMax}
}

// RunResponse is the payload of one completed trending run. The shell
// keeps nothing back: a run's full table, category snapshot and
// aggregates all travel in its response.
type RunResponse struct {
	FetchedAt  time.Time           `json:"fetched_at"`
	ExportPath string              `json:"export_path"`
	Count      int                 `json:"count"`
	Records    []model.VideoRecord `json:"records"`
	Categories model.CategoryMap   `json:"categories"`
	Stats      *stats.Summary      `json:"stats"`
}

// Run handles POST /api/trending/run
// The API key comes from the X-Api-Key header, falling back to server
// configuration; max_results is an optional query parameter.
func (h *TrendingHandler) Run(c fiber.Ctx) error {
	apiKey, errMsg := middleware.ValidateAPIKey(c.Get("X-Api-Key"), h.fallbackKey)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "MISSING_API_KEY", errMsg)
	}

	maxResults, errMsg := middleware.ValidateMaxResults(fiber.Query[string](c, "max_results"), h.defaultMax)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_MAX_RESULTS", errMsg)
	}

	start := time.Now()
	result, err := h.runner.Run(c.Context(), apiKey, maxResults)
	if err != nil {
		Metrics.PipelineRunsTotal.WithLabelValues("error").Inc()
		middleware.Logger.Error().Err(err).Int("max_results", maxResults).Msg("trending run failed")

		var apiErr *youtube.APIError
		if errors.As(err, &apiErr) {
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR",
				fmt.Sprintf("Platform API returned status %d", apiErr.StatusCode))
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "PIPELINE_ERROR", "Trending run failed")
	}

	Metrics.PipelineRunsTotal.WithLabelValues("success").Inc()
	Metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	Metrics.TrendingVideosFetched.Add(float64(len(result.Records)))

	return c.JSON(RunResponse{
		FetchedAt:  result.FetchedAt,
		ExportPath: result.ExportPath,
		Count:      len(result.Records),
		Records:    result.Records,
		Categories: result.Categories,
		Stats:      stats.Build(result.Records),
	})
}

// Latest handles GET /api/trending/latest
// Re-derives the table from the export file of the most recent run
// instead of refetching the listing. Categories are still resolved
// live, so the same key rules apply as for a run.
func (h *TrendingHandler) Latest(c fiber.Ctx) error {
	apiKey, errMsg := middleware.ValidateAPIKey(c.Get("X-Api-Key"), h.fallbackKey)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "MISSING_API_KEY", errMsg)
	}

	result, err := h.runner.Analyze(c.Context(), apiKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NO_EXPORT", "No export file available yet")
		}
		middleware.Logger.Error().Err(err).Msg("trending reanalysis failed")

		var apiErr *youtube.APIError
		if errors.As(err, &apiErr) {
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR",
				fmt.Sprintf("Platform API returned status %d", apiErr.StatusCode))
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "PIPELINE_ERROR", "Trending reanalysis failed")
	}

	return c.JSON(RunResponse{
		FetchedAt:  result.FetchedAt,
		ExportPath: result.ExportPath,
		Count:      len(result.Records),
		Records:    result.Records,
		Categories: result.Categories,
		Stats:      stats.Build(result.Records),
	})
}
