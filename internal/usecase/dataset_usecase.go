package usecase

import (
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/analytics"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/fetch"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/loader"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/pipeline"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/repository"
)

// ErrNoRemoteURL: tidak ada URL spreadsheet di request maupun konfigurasi.
var ErrNoRemoteURL = errors.New("URL spreadsheet belum diatur")

type DatasetUsecase struct {
	repo      repository.DatasetRepository
	pipe      *pipeline.Pipeline
	get       fetch.Func
	remoteURL string
	loc       *time.Location
	now       func() time.Time
	log       *zap.Logger
}

func NewDatasetUsecase(repo repository.DatasetRepository, pipe *pipeline.Pipeline, get fetch.Func, remoteURL string, loc *time.Location, log *zap.Logger) *DatasetUsecase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DatasetUsecase{
		repo:      repo,
		pipe:      pipe,
		get:       get,
		remoteURL: remoteURL,
		loc:       loc,
		now:       time.Now,
		log:       log,
	}
}

// Today adalah tanggal hari ini di zona waktu aplikasi, sebagai tanggal UTC.
func (u *DatasetUsecase) Today() time.Time {
	n := u.now().In(u.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// Ingest membaca file unggahan lalu menjalankan pipeline dan menyimpan
// hasilnya sebagai dataset sesi.
func (u *DatasetUsecase) Ingest(name string, r io.Reader, ref *time.Time) (*model.Dataset, error) {
	raw, err := loader.Load(name, r)
	if err != nil {
		u.log.Warn("gagal membaca file", zap.String("file", name), zap.Error(err))
		return nil, err
	}
	return u.store(raw, name, model.SourceUpload, ref)
}

// IngestRemote mengambil spreadsheet dari URL, atau SPREADSHEET_URL bila kosong.
func (u *DatasetUsecase) IngestRemote(url string, ref *time.Time) (*model.Dataset, error) {
	if url == "" {
		url = u.remoteURL
	}
	if url == "" {
		return nil, ErrNoRemoteURL
	}
	raw, err := loader.LoadRemote(u.get, url)
	if err != nil {
		u.log.Warn("gagal mengambil spreadsheet", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return u.store(raw, url, model.SourceRemote, ref)
}

func (u *DatasetUsecase) store(raw model.Table, name string, source model.SourceKind, ref *time.Time) (*model.Dataset, error) {
	// 1. Tanggal acuan
	refDate := u.Today()
	if ref != nil {
		refDate = *ref
	}

	// 2. Pipeline; laporan data kosong dihitung sebelum kolom kosong dibuang
	res := u.pipe.Run(raw, refDate)

	ds := &model.Dataset{
		ID:             uuid.NewString(),
		FileName:       name,
		Source:         source,
		UploadedAt:     u.now(),
		ReferenceDate:  refDate,
		RawColumns:     raw.Columns,
		DroppedColumns: res.Dropped,
		Missing:        analytics.MissingReport(res.Renamed),
		Rows:           res.Canonical.Len(),
		Raw:            raw,
		Canonical:      res.Canonical,
	}

	// 3. Simpan ke sesi
	if err := u.repo.Save(ds); err != nil {
		return nil, err
	}
	u.log.Info("dataset dimuat",
		zap.String("dataset_id", ds.ID),
		zap.String("source", string(source)),
		zap.Int("rows", ds.Rows),
		zap.Strings("dropped_columns", ds.DroppedColumns),
	)
	return ds, nil
}

func (u *DatasetUsecase) Get(id string) (*model.Dataset, error) {
	return u.repo.FindByID(id)
}

func (u *DatasetUsecase) Delete(id string) error {
	if err := u.repo.Delete(id); err != nil {
		return err
	}
	u.log.Info("dataset dihapus", zap.String("dataset_id", id))
	return nil
}
