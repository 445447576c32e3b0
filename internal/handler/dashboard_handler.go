package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/filter"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/middleware"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/usecase"
)

type DashboardHandler struct {
	usecase *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats mengembalikan KPI, demografi, dan tren untuk filter yang dipilih.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	ds, _ := middleware.CurrentDataset(c)
	criteria, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}

	stats, err := h.usecase.Dashboard(ds, criteria)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": message(stats.NoData, "Berhasil mengambil statistik"),
		"no_data": stats.NoData,
		"data":    stats,
	})
}

// GetTable mengembalikan tabel karyawan hasil filter.
func (h *DashboardHandler) GetTable(c *fiber.Ctx) error {
	return h.table(c, h.usecase.Table, "Berhasil mengambil data karyawan")
}

// GetRetirement: karyawan aktif yang akan pensiun dalam 12 bulan.
func (h *DashboardHandler) GetRetirement(c *fiber.Ctx) error {
	return h.table(c, h.usecase.Retirement, "Berhasil mengambil data karyawan mendekati pensiun")
}

// GetResignation: karyawan aktif dengan rencana resign dalam 1 bulan.
func (h *DashboardHandler) GetResignation(c *fiber.Ctx) error {
	return h.table(c, h.usecase.Resignation, "Berhasil mengambil data rencana resign")
}

func (h *DashboardHandler) GetMap(c *fiber.Ctx) error {
	ds, _ := middleware.CurrentDataset(c)
	criteria, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}

	view, err := h.usecase.Map(ds, criteria)
	if err != nil {
		return respondError(c, err)
	}
	msg := message(view.NoData, "Berhasil mengambil peta sebaran")
	if !view.NoData && !view.Available {
		msg = "Data lokasi pelabuhan tidak tersedia, peta tidak dapat ditampilkan"
	}
	return c.JSON(fiber.Map{"message": msg, "no_data": view.NoData, "data": view})
}

type tableFunc func(ds *model.Dataset, c filter.Criteria) (filter.Result, error)

func (h *DashboardHandler) table(c *fiber.Ctx, fn tableFunc, ok string) error {
	ds, _ := middleware.CurrentDataset(c)
	criteria, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}

	res, err := fn(ds, criteria)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":         message(res.NoData, ok),
		"no_data":         res.NoData,
		"applied_filters": nonEmpty(res.Applied),
		"total":           res.Table.Len(),
		"data":            res.Table,
	})
}

func message(noData bool, ok string) string {
	if noData {
		return "Tidak ada data yang sesuai dengan filter"
	}
	return ok
}

func nonEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
