package routes

import (
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/repository"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/usecase"
)

// Deps berisi dependency yang dipakai bersama oleh semua route.
type Deps struct {
	Repo      repository.DatasetRepository
	Datasets  *usecase.DatasetUsecase
	Dashboard *usecase.DashboardUsecase
	Location  *time.Location
}
