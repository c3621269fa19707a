package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/config"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/handler"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/middleware"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/pipeline"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/router"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "youtube-trend-analysis")
	handler.InitMetrics()

	// Publish-time features are derived in this zone; refusing to start
	// beats silently deriving in UTC.
	loc, err := time.LoadLocation(cfg.TargetTZ)
	if err != nil {
		log.Fatalf("failed to load target timezone %q: %v", cfg.TargetTZ, err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	runner := pipeline.NewRunner(cfg.Region, cfg.YouTubeAPIURL, cfg.ExportPath, httpClient, loc)

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Trend Analysis API",
		ServerHeader: "trend-analysis",
	})

	h := &router.Handlers{
		Trending: handler.NewTrendingHandler(runner, cfg.APIKey, cfg.MaxResults),
		Export:   handler.NewExportHandler(cfg.ExportPath),
		Health:   handler.NewHealthHandler(),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	log.Printf("trend analysis backend starting on :%s (env=%s, region=%s, tz=%s)",
		cfg.Port, cfg.Environment, cfg.Region, cfg.TargetTZ)
	log.Fatal(app.Listen(":" + cfg.Port))
}
