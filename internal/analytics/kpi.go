package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// Summary adalah KPI utama dashboard.
type Summary struct {
	TotalKaryawan   int     `json:"total_karyawan"`
	PenempatanLaut  int     `json:"penempatan_laut"`
	PenempatanDarat int     `json:"penempatan_darat"`
	PersenLaut      float64 `json:"persen_laut"`
	PersenDarat     float64 `json:"persen_darat"`
	RataMasaKerja   float64 `json:"rata_masa_kerja"`
	Aktif           int     `json:"aktif"`
	TidakAktif      int     `json:"tidak_aktif"`
}

func isLaut(v model.Value) bool {
	return containsFold(v.String(), "laut")
}

func isDarat(v model.Value) bool {
	return containsFold(v.String(), "darat")
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

// Summarize menghitung KPI dari tabel (biasanya hasil filter). Tabel
// kosong menghasilkan Summary bernilai nol.
func Summarize(t model.Table, ref time.Time) Summary {
	s := Summary{TotalKaryawan: t.Len()}

	var tenureSum float64
	var tenureN int
	for r := range t.Rows {
		jenis := t.Cell(r, model.KolomJenis)
		if isLaut(jenis) {
			s.PenempatanLaut++
		}
		if isDarat(jenis) {
			s.PenempatanDarat++
		}

		switch t.Cell(r, model.KolomStatusKepegawaian).String() {
		case model.StatusPKWTT, model.StatusPKWT:
			s.Aktif++
		case model.StatusCuti, model.StatusResign, model.StatusPensiun, model.StatusTerminated:
			s.TidakAktif++
		}

		if masuk, ok := dateAt(t, r, model.KolomTanggalMasuk); ok {
			tenureSum += float64(daysBetween(masuk, ref)) / 365.25
			tenureN++
		}
	}

	if s.TotalKaryawan > 0 {
		s.PersenLaut = percent(s.PenempatanLaut, s.TotalKaryawan)
		s.PersenDarat = percent(s.PenempatanDarat, s.TotalKaryawan)
	}
	if tenureN > 0 {
		s.RataMasaKerja = tenureSum / float64(tenureN)
	}
	return s
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

type DeltaMode int

const (
	// DeltaHireMonth membandingkan dengan jumlah karyawan yang masuk pada
	// bulan kalender sebelumnya.
	DeltaHireMonth DeltaMode = iota
	// DeltaActiveSnapshot membandingkan dengan jumlah karyawan aktif pada
	// hari terakhir bulan sebelumnya.
	DeltaActiveSnapshot
)

// Delta adalah perubahan total karyawan terhadap periode lalu.
type Delta struct {
	Current  int     `json:"current"`
	Previous int     `json:"previous"`
	Change   float64 `json:"change_percent"`
	// Directional: pembagi periode lalu nol dan diganti 1, jadi angka
	// persentase hanya menunjukkan arah.
	Directional bool `json:"directional"`
}

// PeriodDelta selalu menghitung periode lalu dari tabel kanonik, bukan
// dari hasil filter.
func PeriodDelta(current int, canonical model.Table, ref time.Time, mode DeltaMode) Delta {
	start, end := lastMonth(dayOf(ref))

	prev := 0
	switch mode {
	case DeltaActiveSnapshot:
		prev = CountActive(canonical, end)
	default:
		for r := range canonical.Rows {
			if masuk, ok := dateAt(canonical, r, model.KolomTanggalMasuk); ok && !masuk.Before(start) && !masuk.After(end) {
				prev++
			}
		}
	}

	d := Delta{Current: current, Previous: prev}
	denom := prev
	if denom == 0 {
		denom = 1
		d.Directional = true
	}
	d.Change = float64(current-denom) / float64(denom) * 100
	return d
}

// ParseDeltaMode membaca nilai DELTA_MODE: "hire_month" atau "active_snapshot".
func ParseDeltaMode(s string) (DeltaMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hire_month":
		return DeltaHireMonth, nil
	case "active_snapshot":
		return DeltaActiveSnapshot, nil
	}
	return DeltaHireMonth, fmt.Errorf("DELTA_MODE tidak dikenal: %q", s)
}
