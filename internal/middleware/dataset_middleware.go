package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/repository"
)

// LocalsDataset adalah kunci c.Locals untuk dataset aktif.
const LocalsDataset = "dataset"

// Dataset mengambil dataset sesi berdasarkan parameter :id.
func Dataset(repo repository.DatasetRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil ID dari path
		id := c.Params("id")
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID dataset wajib diisi"})
		}

		// 2. Cari di penyimpanan sesi
		ds, err := repo.FindByID(id)
		if errors.Is(err, repository.ErrDatasetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dataset tidak ditemukan atau sesi sudah berakhir"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil dataset"})
		}

		// 3. Simpan ke Context agar bisa dipakai di Handler
		c.Locals(LocalsDataset, ds)
		return c.Next()
	}
}

// CurrentDataset mengambil dataset yang diset oleh middleware Dataset.
func CurrentDataset(c *fiber.Ctx) (*model.Dataset, bool) {
	ds, ok := c.Locals(LocalsDataset).(*model.Dataset)
	return ds, ok
}
