package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/handler"
)

func SetupDashboardRoutes(ds fiber.Router, d Deps) {
	hdl := handler.NewDashboardHandler(d.Dashboard)

	ds.Post("/dashboard", hdl.GetStats)
	ds.Post("/table", hdl.GetTable)
	ds.Post("/retirement", hdl.GetRetirement)
	ds.Post("/resignation", hdl.GetResignation)
	ds.Post("/map", hdl.GetMap)
}
