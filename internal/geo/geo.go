package geo

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/fetch"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/pipeline"
)

// DefaultNameKey adalah properti nama lokasi pada GeoJSON pelabuhan.
const DefaultNameKey = "Nama Pelabuhan"

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Lookup memetakan nama lokasi ke titik koordinat, urut sesuai file.
type Lookup struct {
	Available bool
	Locations []model.Lokasi
}

// ParseFeatureCollection mengambil fitur bertipe Point yang punya properti
// nama. Fitur lain dilewati.
func ParseFeatureCollection(data []byte, nameKey string) ([]model.Lokasi, error) {
	if nameKey == "" {
		nameKey = DefaultNameKey
	}
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("GeoJSON tidak valid: %w", err)
	}

	out := make([]model.Lokasi, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
			continue
		}
		name, ok := f.Properties[nameKey].(string)
		if !ok || name == "" {
			continue
		}
		// GeoJSON: [lon, lat]
		out = append(out, model.Lokasi{
			NamaLokasi: name,
			Longitude:  f.Geometry.Coordinates[0],
			Latitude:   f.Geometry.Coordinates[1],
		})
	}
	return out, nil
}

// Service mengambil data lokasi referensi sekali lalu menyimpannya.
type Service struct {
	url     string
	nameKey string
	get     fetch.Func
	log     *zap.Logger

	mu       sync.Mutex
	cached   *Lookup
	failedAt time.Time
	now      func() time.Time
}

// RetryAfter adalah jeda sebelum fetch diulang setelah gagal.
const RetryAfter = 30 * time.Second

func NewService(url, nameKey string, get fetch.Func, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{url: url, nameKey: nameKey, get: get, log: log, now: time.Now}
}

// Lookup tidak pernah gagal: kegagalan ambil/parse dicatat di log dan
// menghasilkan Lookup kosong dengan Available=false. Hasil sukses disimpan
// selamanya; kegagalan diingat selama RetryAfter supaya host yang mati
// tidak di-fetch ulang di setiap request.
func (s *Service) Lookup() Lookup {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached
	}
	if s.url == "" {
		s.log.Warn("GEOJSON_URL kosong, peta lokasi tidak tersedia")
		return Lookup{}
	}
	if !s.failedAt.IsZero() && s.now().Sub(s.failedAt) < RetryAfter {
		return Lookup{}
	}

	data, err := s.get(s.url)
	if err != nil {
		s.failedAt = s.now()
		s.log.Warn("gagal mengambil data lokasi", zap.String("url", s.url), zap.Error(err))
		return Lookup{}
	}
	locs, err := ParseFeatureCollection(data, s.nameKey)
	if err != nil {
		s.failedAt = s.now()
		s.log.Warn("gagal membaca data lokasi", zap.String("url", s.url), zap.Error(err))
		return Lookup{}
	}

	s.log.Info("data lokasi dimuat", zap.Int("jumlah", len(locs)))
	s.cached = &Lookup{Available: true, Locations: locs}
	return *s.cached
}

// matchKey menyamakan nama lokasi dengan pembersihan teks kolom kategori.
func matchKey(name string) string {
	return pipeline.CleanText(name)
}
