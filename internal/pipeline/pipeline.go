package pipeline

import (
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// Result adalah keluaran satu kali proses tabel mentah.
type Result struct {
	// Renamed adalah tabel setelah ganti nama kolom, sebelum kolom kosong dibuang.
	Renamed   model.Table
	Canonical model.Table
	Dropped   []string
}

// Pipeline menggabungkan Normalizer dan Canonicalizer.
type Pipeline struct {
	normalizer *Normalizer
}

func New(extra ...Alias) *Pipeline {
	return &Pipeline{normalizer: NewNormalizer(extra...)}
}

// Run: rename -> buang kolom kosong -> kanonikalisasi. Tabel mentah tidak diubah.
func (p *Pipeline) Run(raw model.Table, ref time.Time) Result {
	renamed := p.normalizer.Rename(raw)
	normalized, dropped := DropEmptyColumns(renamed)
	canonical := NewCanonicalizer(DefaultOptions(ref)).Canonicalize(normalized)
	return Result{Renamed: renamed, Canonical: canonical, Dropped: dropped}
}
