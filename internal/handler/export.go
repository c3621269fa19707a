package handler

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/middleware"
)

type ExportHandler struct {
	exportPath string
}

func NewExportHandler(exportPath string) *ExportHandler {
	return &ExportHandler{exportPath: exportPath}
}

// Export handles GET /api/trending/export
// Serves the CSV file written by the most recent trending run. Each run
// overwrites the same path, so there is at most one file to serve.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	info, err := os.Stat(h.exportPath)
	if err != nil || info.IsDir() {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NO_EXPORT", "No export file available yet")
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename="+filepath.Base(h.exportPath))
	return c.SendFile(h.exportPath)
}
