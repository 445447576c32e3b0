package handler

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/loader"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/middleware"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/usecase"
)

const defaultPreviewRows = 100

type DatasetHandler struct {
	datasets  *usecase.DatasetUsecase
	dashboard *usecase.DashboardUsecase
}

func NewDatasetHandler(datasets *usecase.DatasetUsecase, dashboard *usecase.DashboardUsecase) *DatasetHandler {
	return &DatasetHandler{datasets: datasets, dashboard: dashboard}
}

// Upload menerima file CSV/XLS/XLSX pada field "file".
func (h *DatasetHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File data karyawan wajib diupload"})
	}
	if !supported(file.Filename) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Format file tidak didukung. Gunakan CSV, XLS, atau XLSX"})
	}

	ref, err := parseOptionalDate(c.FormValue("reference_date"))
	if err != nil {
		return respondError(c, err)
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuka file"})
	}
	defer f.Close()

	ds, err := h.datasets.Ingest(filepath.Base(file.Filename), f, ref)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Data berhasil dimuat", "data": ds})
}

type RemoteRequest struct {
	URL           string `json:"url" validate:"omitempty,url"`
	ReferenceDate string `json:"reference_date" validate:"omitempty,datetime=2006-01-02"`
}

// UploadRemote memuat spreadsheet dari URL (atau SPREADSHEET_URL).
func (h *DatasetHandler) UploadRemote(c *fiber.Ctx) error {
	var req RemoteRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
		}
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, err)
	}
	ref, err := parseOptionalDate(req.ReferenceDate)
	if err != nil {
		return respondError(c, err)
	}

	ds, err := h.datasets.IngestRemote(req.URL, ref)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Data berhasil dimuat", "data": ds})
}

func (h *DatasetHandler) Get(c *fiber.Ctx) error {
	ds, _ := middleware.CurrentDataset(c)
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil dataset",
		"data": fiber.Map{
			"dataset": ds,
			"columns": ds.Canonical.Columns,
		},
	})
}

func (h *DatasetHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.datasets.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Dataset berhasil dihapus"})
}

// Raw menampilkan pratinjau data mentah sebelum diproses.
func (h *DatasetHandler) Raw(c *fiber.Ctx) error {
	ds, _ := middleware.CurrentDataset(c)
	limit := c.QueryInt("limit", defaultPreviewRows)
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data mentah",
		"total":   ds.Raw.Len(),
		"data":    head(ds.Raw, limit),
	})
}

func (h *DatasetHandler) Missing(c *fiber.Ctx) error {
	ds, _ := middleware.CurrentDataset(c)
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil laporan data kosong",
		"data":    ds.Missing,
	})
}

func (h *DatasetHandler) Options(c *fiber.Ctx) error {
	ds, _ := middleware.CurrentDataset(c)
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil opsi filter",
		"data":    h.dashboard.Options(ds),
	})
}

func supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range loader.SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

func head(t model.Table, n int) model.Table {
	if n <= 0 || n >= t.Len() {
		return t
	}
	return model.NewTable(t.Columns, t.Rows[:n])
}
