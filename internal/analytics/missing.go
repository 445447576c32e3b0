package analytics

import (
	"sort"
	"strings"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// MissingReport menghitung sel kosong per kolom, urut persentase menurun.
func MissingReport(t model.Table) []model.MissingStat {
	out := make([]model.MissingStat, 0, len(t.Columns))
	for _, col := range t.Columns {
		n := 0
		for _, v := range t.Column(col) {
			if v.IsNull() || (v.Kind == model.KindText && strings.TrimSpace(v.Str) == "") {
				n++
			}
		}
		out = append(out, model.MissingStat{Column: col, Count: n, Percentage: percent(n, t.Len())})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Percentage > out[j].Percentage })
	return out
}
