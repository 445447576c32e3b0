package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/analytics"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/pipeline"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/repository"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/routes"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/usecase"
)

const karyawanCSV = `Status_Kepegawaian,Jenis_Kelamin,Tanggal_Masuk,Tanggal_Lahir,Lokasi_Kerja,Jenis,Unit_Kerja
Employee,L,01/02/2020,15/05/1990,Tanjung Priok,Laut,HO
Contract,P,10/05/2024,01/01/1998,Bitung,Darat,Cabang Bitung
`

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := repository.NewDatasetRepository(time.Hour, 0)
	t.Cleanup(repo.Close)

	dashboard := usecase.NewDashboardUsecase(nil, analytics.DeltaHireMonth, nil)
	repo.OnEvict(dashboard.Forget)

	app := fiber.New()
	routes.Setup(app, routes.Deps{
		Repo:      repo,
		Datasets:  usecase.NewDatasetUsecase(repo, pipeline.New(), nil, "", time.UTC, nil),
		Dashboard: dashboard,
		Location:  time.UTC,
	})
	return app
}

func upload(t *testing.T, app *fiber.App, name, content string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("reference_date", "2024-06-30"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/datasets/", &body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func uploadDataset(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := upload(t, app, "karyawan.csv", karyawanCSV)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	decode(t, resp, &out)
	require.NotEmpty(t, out.Data.ID)
	return out.Data.ID
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestUpload(t *testing.T) {
	app := newApp(t)
	id := uploadDataset(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	var health struct {
		Datasets int `json:"datasets"`
	}
	decode(t, resp, &health)
	assert.Equal(t, 1, health.Datasets)
}

func TestUpload_UnsupportedFormat(t *testing.T) {
	app := newApp(t)

	resp := upload(t, app, "karyawan.pdf", "%PDF-1.4")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpload_EmptyFile(t *testing.T) {
	app := newApp(t)

	resp := upload(t, app, "karyawan.csv", "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUploadRemote_NoURL(t *testing.T) {
	app := newApp(t)

	resp := postJSON(t, app, "/api/datasets/remote", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDataset_NotFound(t *testing.T) {
	app := newApp(t)

	resp := postJSON(t, app, "/api/datasets/tidak-ada/dashboard", `{}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	app := newApp(t)
	id := uploadDataset(t, app)

	resp := postJSON(t, app, "/api/datasets/"+id+"/dashboard", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		NoData bool `json:"no_data"`
		Data   struct {
			Summary analytics.Summary `json:"summary"`
		} `json:"data"`
	}
	decode(t, resp, &out)
	assert.False(t, out.NoData)
	assert.Equal(t, 2, out.Data.Summary.TotalKaryawan)
	assert.Equal(t, 1, out.Data.Summary.PenempatanLaut)
}

func TestDashboard_NoData(t *testing.T) {
	app := newApp(t)
	id := uploadDataset(t, app)

	resp := postJSON(t, app, "/api/datasets/"+id+"/table", `{"categories": {"Jenis": ["Udara"]}}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
		NoData  bool   `json:"no_data"`
		Total   int    `json:"total"`
	}
	decode(t, resp, &out)
	assert.True(t, out.NoData)
	assert.Equal(t, 0, out.Total)
	assert.Equal(t, "Tidak ada data yang sesuai dengan filter", out.Message)
}

func TestDashboard_InvalidFilter(t *testing.T) {
	app := newApp(t)
	id := uploadDataset(t, app)

	cases := map[string]string{
		"rentang terbalik": `{"date_from": "2024-06-01", "date_to": "2024-01-01"}`,
		"format tanggal":   `{"date_from": "01/06/2024"}`,
		"kategori kosong":  `{"categories": {"Jenis": [""]}}`,
		"json tidak valid": `{"date_from": `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/datasets/"+id+"/dashboard", body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestMap_Unavailable(t *testing.T) {
	app := newApp(t)
	id := uploadDataset(t, app)

	resp := postJSON(t, app, "/api/datasets/"+id+"/map", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
		Data    struct {
			Available bool `json:"available"`
		} `json:"data"`
	}
	decode(t, resp, &out)
	assert.False(t, out.Data.Available)
	assert.Contains(t, out.Message, "tidak tersedia")
}

func TestExport(t *testing.T) {
	app := newApp(t)
	id := uploadDataset(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `attachment; filename="data_karyawan_cleaned_`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Status Kepegawaian,"))
}

func TestDelete(t *testing.T) {
	app := newApp(t)
	id := uploadDataset(t, app)

	req := httptest.NewRequest(http.MethodDelete, "/api/datasets/"+id+"/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/missing", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
