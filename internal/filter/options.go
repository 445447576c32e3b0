package filter

import (
	"sort"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// Options adalah pilihan nilai untuk widget filter.
type Options struct {
	DateMin    *time.Time          `json:"date_min,omitempty"`
	DateMax    *time.Time          `json:"date_max,omitempty"`
	Categories map[string][]string `json:"categories"`
}

// BuildOptions mengumpulkan nilai unik tiap kolom filter dan batas tanggal
// masuk (tanggal masuk valid paling awal <= ref, sampai ref).
func BuildOptions(canonical model.Table, ref time.Time) Options {
	opts := Options{Categories: map[string][]string{}}
	ref = day(ref)

	var earliest *time.Time
	for _, v := range canonical.Column(model.KolomTanggalMasuk) {
		t, ok := v.Time()
		if !ok || t.After(ref) {
			continue
		}
		if earliest == nil || t.Before(*earliest) {
			tt := t
			earliest = &tt
		}
	}
	if earliest != nil {
		opts.DateMin = earliest
		opts.DateMax = &ref
	}

	for _, col := range model.FilterColumns {
		values := canonical.Column(col)
		if values == nil {
			continue
		}
		seen := map[string]bool{}
		var uniq []string
		for _, v := range values {
			if v.IsNull() || v.String() == "" || seen[v.String()] {
				continue
			}
			seen[v.String()] = true
			uniq = append(uniq, v.String())
		}
		if len(uniq) == 0 {
			continue
		}
		sort.Strings(uniq)
		opts.Categories[col] = uniq
	}
	return opts
}
