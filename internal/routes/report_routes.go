package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/handler"
)

func SetupReportRoutes(ds fiber.Router, d Deps) {
	hdl := handler.NewReportHandler(d.Dashboard, d.Location)

	ds.Get("/export", hdl.ExportAll)
	ds.Post("/export", hdl.ExportFiltered)
}
