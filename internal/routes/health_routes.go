package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"datasets": d.Repo.Count(),
		})
	})
}

// Setup mendaftarkan semua route aplikasi.
func Setup(app *fiber.App, d Deps) {
	SetupHealthRoutes(app, d)
	ds := SetupDatasetRoutes(app, d)
	SetupDashboardRoutes(ds, d)
	SetupReportRoutes(ds, d)
}
