package analytics

import (
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

const (
	GenBoomers    = "Boomers"
	GenX          = "Gen X"
	GenMillenials = "Millenials"
	GenZ          = "Gen Z"
	GenUnknown    = "Unknown"
)

// GenerationOrder adalah urutan kronologis kohort.
var GenerationOrder = []string{GenBoomers, GenX, GenMillenials, GenZ}

// Generation memakai usia kasar (tahun ref - tahun lahir), tanpa melihat
// bulan dan tanggal lahir.
func Generation(birth model.Value, refYear int) string {
	t, ok := birth.Time()
	if !ok {
		return GenUnknown
	}
	age := refYear - t.Year()
	switch {
	case age >= 60:
		return GenBoomers
	case age >= 44:
		return GenX
	case age >= 28:
		return GenMillenials
	default:
		return GenZ
	}
}

// Share adalah jumlah dan persentase satu kategori.
type Share struct {
	Label      string  `json:"label"`
	Jumlah     int     `json:"jumlah"`
	Persentase float64 `json:"persentase"`
}

// GenerationDistribution menghitung sebaran generasi; tanggal lahir kosong
// (Unknown) tidak ikut dihitung. Kohort tanpa anggota tidak ditampilkan.
func GenerationDistribution(t model.Table, ref time.Time) []Share {
	counts := make(map[string]int, len(GenerationOrder))
	total := 0
	for r := range t.Rows {
		g := Generation(t.Cell(r, model.KolomTanggalLahir), ref.Year())
		if g == GenUnknown {
			continue
		}
		counts[g]++
		total++
	}

	out := make([]Share, 0, len(GenerationOrder))
	for _, g := range GenerationOrder {
		if counts[g] == 0 {
			continue
		}
		out = append(out, Share{Label: g, Jumlah: counts[g], Persentase: round1(percent(counts[g], total))})
	}
	return out
}

// WithGeneration menambah kolom Generasi ke tabel.
func WithGeneration(t model.Table, ref time.Time) model.Table {
	vals := make([]model.Value, t.Len())
	for r := range t.Rows {
		vals[r] = model.Text(Generation(t.Cell(r, model.KolomTanggalLahir), ref.Year()))
	}
	return t.WithColumn(model.KolomGenerasi, vals)
}
