package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/handler"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/middleware"
)

// SetupDatasetRoutes mengembalikan group /api/datasets/:id yang sudah
// memakai middleware Dataset.
func SetupDatasetRoutes(app *fiber.App, d Deps) fiber.Router {
	hdl := handler.NewDatasetHandler(d.Datasets, d.Dashboard)

	api := app.Group("/api/datasets")
	api.Post("/", hdl.Upload)
	api.Post("/remote", hdl.UploadRemote)

	ds := api.Group("/:id", middleware.Dataset(d.Repo))
	ds.Get("/", hdl.Get)
	ds.Delete("/", hdl.Delete)
	ds.Get("/raw", hdl.Raw)
	ds.Get("/missing", hdl.Missing)
	ds.Get("/options", hdl.Options)
	return ds
}
