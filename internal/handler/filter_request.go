package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/filter"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/loader"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/repository"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/usecase"
)

var validate = validator.New()

// FilterRequest adalah body filter dashboard. Semua field opsional.
type FilterRequest struct {
	DateFrom      string              `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo        string              `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	ReferenceDate string              `json:"reference_date" validate:"omitempty,datetime=2006-01-02"`
	ActiveOnly    bool                `json:"active_only"`
	Categories    map[string][]string `json:"categories" validate:"omitempty,dive,keys,required,endkeys,dive,required"`
}

// Criteria mengubah request menjadi kriteria filter. Body kosong berarti
// tanpa filter.
func (r FilterRequest) Criteria() (filter.Criteria, error) {
	c := filter.Criteria{Categories: r.Categories, ActiveOnly: r.ActiveOnly}
	var err error
	if c.DateFrom, err = parseOptionalDate(r.DateFrom); err != nil {
		return c, err
	}
	if c.DateTo, err = parseOptionalDate(r.DateTo); err != nil {
		return c, err
	}
	ref, err := parseOptionalDate(r.ReferenceDate)
	if err != nil {
		return c, err
	}
	if ref != nil {
		c.Reference = *ref
	}
	return c, c.Validate()
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseFilter membaca body (boleh kosong) lalu memvalidasinya.
func parseFilter(c *fiber.Ctx) (filter.Criteria, error) {
	var req FilterRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return filter.Criteria{}, errBadFormat
		}
	}
	if err := validate.Struct(req); err != nil {
		return filter.Criteria{}, err
	}
	return req.Criteria()
}

var errBadFormat = errors.New("format data salah")

// respondError memetakan error domain ke status HTTP.
func respondError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		details := make(map[string]string, len(ve))
		for _, fe := range ve {
			details[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validasi filter gagal", "details": details})
	case errors.Is(err, errBadFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	case errors.Is(err, filter.ErrInvalidDateRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal mulai harus sebelum tanggal akhir"})
	case errors.Is(err, usecase.ErrNoRemoteURL):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "URL spreadsheet wajib diisi"})
	case errors.Is(err, repository.ErrDatasetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dataset tidak ditemukan atau sesi sudah berakhir"})
	case errors.Is(err, loader.ErrUnreadableSource):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, new(*time.ParseError)):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal harus YYYY-MM-DD"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan pada server"})
}
