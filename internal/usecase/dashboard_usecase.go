package usecase

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/analytics"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/export"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/filter"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/geo"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// Dashboard adalah seluruh isi halaman dashboard untuk satu filter.
type Dashboard struct {
	NoData            bool                      `json:"no_data"`
	Applied           []string                  `json:"applied_filters"`
	ReferenceDate     string                    `json:"reference_date"`
	Summary           analytics.Summary         `json:"summary"`
	Delta             analytics.Delta           `json:"delta"`
	Generasi          []analytics.Share         `json:"generasi"`
	StatusKepegawaian []analytics.Share         `json:"status_kepegawaian"`
	JenisKelamin      []analytics.Share         `json:"jenis_kelamin"`
	BandLevel         []analytics.Share         `json:"band_level"`
	Penempatan        []analytics.Share         `json:"penempatan"`
	KelasKapal        []analytics.Share         `json:"kelas_kapal"`
	JenisKantor       []analytics.Share         `json:"jenis_kantor"`
	RekrutmenBulanan  []analytics.MonthCount    `json:"rekrutmen_bulanan"`
	Lokasi            []analytics.LocationCount `json:"lokasi"`
}

// MapView adalah data peta sebaran karyawan.
type MapView struct {
	NoData    bool                      `json:"no_data"`
	Available bool                      `json:"available"`
	Markers   []model.Marker            `json:"markers"`
	Counts    []analytics.LocationCount `json:"counts"`
}

type DashboardUsecase struct {
	geo          *geo.Service
	deltaMode    analytics.DeltaMode
	officeColumn string
	log          *zap.Logger

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]map[string][]byte
}

func NewDashboardUsecase(geoSvc *geo.Service, deltaMode analytics.DeltaMode, log *zap.Logger) *DashboardUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardUsecase{
		geo:          geoSvc,
		deltaMode:    deltaMode,
		officeColumn: model.KolomUnitKerja,
		log:          log,
		cache:        map[string]map[string][]byte{},
	}
}

// Filter selalu berangkat dari tabel kanonik dataset.
func (u *DashboardUsecase) Filter(ds *model.Dataset, c filter.Criteria) (filter.Result, error) {
	if c.Reference.IsZero() {
		c.Reference = ds.ReferenceDate
	}
	return filter.Apply(ds.Canonical, c)
}

func (u *DashboardUsecase) Options(ds *model.Dataset) filter.Options {
	return filter.BuildOptions(ds.Canonical, ds.ReferenceDate)
}

func (u *DashboardUsecase) Dashboard(ds *model.Dataset, c filter.Criteria) (*Dashboard, error) {
	res, err := u.Filter(ds, c)
	if err != nil {
		return nil, err
	}
	ref := reference(ds, c)
	d := &Dashboard{
		NoData:        res.NoData,
		Applied:       nonNil(res.Applied),
		ReferenceDate: ref.Format(model.DateLayout),
	}
	if res.NoData {
		return d, nil
	}

	t := res.Table
	// 1. KPI dan perubahan terhadap bulan lalu
	d.Summary = analytics.Summarize(t, ref)
	d.Delta = analytics.PeriodDelta(d.Summary.TotalKaryawan, ds.Canonical, ref, u.deltaMode)

	// 2. Demografi
	d.Generasi = analytics.GenerationDistribution(t, ref)
	d.StatusKepegawaian = analytics.Breakdown(t, model.KolomStatusKepegawaian, 0)
	d.JenisKelamin = analytics.Breakdown(t, model.KolomJenisKelamin, 0)
	d.BandLevel = analytics.Breakdown(t, model.KolomBandLevel, 0)
	d.Penempatan = analytics.Breakdown(t, model.KolomJenis, 0)
	d.KelasKapal = analytics.Breakdown(t, model.KolomKelasKapal, analytics.TopKelasKapal)
	d.JenisKantor = analytics.OfficeBreakdown(t, u.officeColumn)

	// 3. Tren dan lokasi
	d.RekrutmenBulanan = analytics.MonthlyHires(t)
	d.Lokasi = analytics.LocationCounts(t)
	return d, nil
}

// Table adalah tabel hasil filter beserta kolom turunan Generasi dan
// Jenis Kantor.
func (u *DashboardUsecase) Table(ds *model.Dataset, c filter.Criteria) (filter.Result, error) {
	res, err := u.Filter(ds, c)
	if err != nil {
		return filter.Result{}, err
	}
	if !res.NoData {
		t := analytics.WithGeneration(res.Table, reference(ds, c))
		res.Table = analytics.WithOfficeType(t, u.officeColumn)
	}
	return res, nil
}

// Retirement: karyawan aktif yang pensiun dalam 12 bulan ke depan.
func (u *DashboardUsecase) Retirement(ds *model.Dataset, c filter.Criteria) (filter.Result, error) {
	return u.proximity(ds, c, analytics.RetirementProximity)
}

// Resignation: karyawan aktif dengan rencana resign dalam 1 bulan ke depan.
func (u *DashboardUsecase) Resignation(ds *model.Dataset, c filter.Criteria) (filter.Result, error) {
	return u.proximity(ds, c, analytics.ResignationProximity)
}

func (u *DashboardUsecase) proximity(ds *model.Dataset, c filter.Criteria, fn func(model.Table, time.Time) model.Table) (filter.Result, error) {
	res, err := u.Filter(ds, c)
	if err != nil {
		return filter.Result{}, err
	}
	ref := reference(ds, c)
	out := fn(analytics.ActiveOnly(res.Table, ref), ref)
	return filter.Result{Table: out, Applied: res.Applied, NoData: out.Empty()}, nil
}

func (u *DashboardUsecase) Map(ds *model.Dataset, c filter.Criteria) (*MapView, error) {
	res, err := u.Filter(ds, c)
	if err != nil {
		return nil, err
	}
	counts := analytics.LocationCounts(res.Table)
	view := &MapView{NoData: res.NoData, Counts: counts, Markers: []model.Marker{}}
	if u.geo == nil {
		return view, nil
	}
	lookup := u.geo.Lookup()
	view.Available = lookup.Available
	if lookup.Available {
		view.Markers = geo.Markers(counts, lookup)
	}
	return view, nil
}

// Export menghasilkan CSV hasil filter. Hasil disimpan per (dataset,
// filter); request serentak dengan kunci sama hanya dihitung sekali.
func (u *DashboardUsecase) Export(ds *model.Dataset, c filter.Criteria) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	key := exportKey(ds, c)

	u.mu.Lock()
	if data, ok := u.cache[ds.ID][key]; ok {
		u.mu.Unlock()
		return data, nil
	}
	u.mu.Unlock()

	v, err, _ := u.group.Do(ds.ID+"|"+key, func() (interface{}, error) {
		res, err := u.Filter(ds, c)
		if err != nil {
			return nil, err
		}
		data := export.CSV(res.Table)

		u.mu.Lock()
		if u.cache[ds.ID] == nil {
			u.cache[ds.ID] = map[string][]byte{}
		}
		u.cache[ds.ID][key] = data
		u.mu.Unlock()

		u.log.Debug("export dibuat", zap.String("dataset_id", ds.ID), zap.Int("bytes", len(data)))
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Forget membuang cache export milik dataset.
func (u *DashboardUsecase) Forget(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.cache, id)
}

func reference(ds *model.Dataset, c filter.Criteria) time.Time {
	if c.Reference.IsZero() {
		return ds.ReferenceDate
	}
	return c.Reference
}

func exportKey(ds *model.Dataset, c filter.Criteria) string {
	var b strings.Builder
	date := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format(model.DateLayout)
	}
	fmt.Fprintf(&b, "%s|%s|%t|%s", date(c.DateFrom), date(c.DateTo), c.ActiveOnly, reference(ds, c).Format(model.DateLayout))

	cols := make([]string, 0, len(c.Categories))
	for col := range c.Categories {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		values := append([]string(nil), c.Categories[col]...)
		sort.Strings(values)
		fmt.Fprintf(&b, "|%s=%s", col, strings.Join(values, "\x1f"))
	}
	return b.String()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
