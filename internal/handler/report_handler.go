package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/export"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/filter"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/middleware"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/usecase"
)

const exportPrefix = "data_karyawan_cleaned"

type ReportHandler struct {
	usecase *usecase.DashboardUsecase
	loc     *time.Location
}

func NewReportHandler(uc *usecase.DashboardUsecase, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportHandler{usecase: uc, loc: loc}
}

// ExportAll mengunduh seluruh data kanonik sebagai CSV.
func (h *ReportHandler) ExportAll(c *fiber.Ctx) error {
	return h.send(c, filter.Criteria{})
}

// ExportFiltered mengunduh data hasil filter sebagai CSV.
func (h *ReportHandler) ExportFiltered(c *fiber.Ctx) error {
	criteria, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}
	return h.send(c, criteria)
}

func (h *ReportHandler) send(c *fiber.Ctx, criteria filter.Criteria) error {
	ds, _ := middleware.CurrentDataset(c)

	data, err := h.usecase.Export(ds, criteria)
	if err != nil {
		return respondError(c, err)
	}

	name := export.FileName(exportPrefix, time.Now().In(h.loc))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}
