package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// TopKelasKapal adalah jumlah kelas kapal yang ditampilkan.
const TopKelasKapal = 7

// Breakdown menghitung jumlah per nilai kolom. Sel kosong diabaikan;
// hasil urut jumlah menurun lalu label. topN <= 0 berarti semua.
// Persentase dihitung terhadap seluruh sel terisi, sebelum dipotong topN.
func Breakdown(t model.Table, col string, topN int) []Share {
	values := t.Column(col)
	if values == nil {
		return []Share{}
	}
	return countValues(values, topN)
}

func countValues(values []model.Value, topN int) []Share {
	counts := map[string]int{}
	total := 0
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		counts[v.String()]++
		total++
	}

	out := make([]Share, 0, len(counts))
	for label, n := range counts {
		out = append(out, Share{Label: label, Jumlah: n, Persentase: round1(percent(n, total))})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Jumlah != out[j].Jumlah {
			return out[i].Jumlah > out[j].Jumlah
		}
		return out[i].Label < out[j].Label
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

const (
	KantorPusat    = "Kantor Pusat"
	KantorRegional = "Kantor Regional"
	KantorCabang   = "Kantor Cabang"
)

// OfficeType menurunkan jenis kantor dari nama unit kerja.
func OfficeType(unit string) string {
	u := strings.ToUpper(unit)
	switch {
	case strings.Contains(u, "HO"):
		return KantorPusat
	case strings.Contains(u, "REGIONAL"):
		return KantorRegional
	default:
		return KantorCabang
	}
}

// OfficeBreakdown menghitung jumlah karyawan per jenis kantor dari kolom col.
func OfficeBreakdown(t model.Table, col string) []Share {
	values := t.Column(col)
	if values == nil {
		return []Share{}
	}
	derived := make([]model.Value, len(values))
	for i, v := range values {
		if v.IsNull() {
			continue
		}
		derived[i] = model.Text(OfficeType(v.String()))
	}
	return countValues(derived, 0)
}

// MonthCount adalah jumlah karyawan masuk pada satu bulan.
type MonthCount struct {
	Bulan  string `json:"bulan"`
	Jumlah int    `json:"jumlah"`
}

// MonthlyHires menghitung tren rekrutmen bulanan, urut kronologis.
func MonthlyHires(t model.Table) []MonthCount {
	counts := map[time.Time]int{}
	for r := range t.Rows {
		masuk, ok := dateAt(t, r, model.KolomTanggalMasuk)
		if !ok {
			continue
		}
		counts[time.Date(masuk.Year(), masuk.Month(), 1, 0, 0, 0, 0, time.UTC)]++
	}

	months := make([]time.Time, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]MonthCount, 0, len(months))
	for _, m := range months {
		out = append(out, MonthCount{Bulan: m.Format("2006-01"), Jumlah: counts[m]})
	}
	return out
}

// WithOfficeType menambah kolom Jenis Kantor yang diturunkan dari kolom col.
func WithOfficeType(t model.Table, col string) model.Table {
	values := t.Column(col)
	if values == nil {
		return t
	}
	derived := make([]model.Value, len(values))
	for i, v := range values {
		if !v.IsNull() {
			derived[i] = model.Text(OfficeType(v.String()))
		}
	}
	return t.WithColumn(model.KolomJenisKantor, derived)
}
