package analytics

import (
	"sort"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// LocationCount adalah jumlah karyawan per lokasi kerja.
type LocationCount struct {
	Lokasi string `json:"lokasi"`
	Jumlah int    `json:"jumlah_karyawan"`
	Laut   int    `json:"karyawan_laut"`
	Darat  int    `json:"karyawan_darat"`
}

// LocationColumn memilih Lokasi Kerja, atau Sub Unit Kerja bila tidak ada.
func LocationColumn(t model.Table) string {
	switch {
	case t.Has(model.KolomLokasiKerja):
		return model.KolomLokasiKerja
	case t.Has(model.KolomSubUnitKerja):
		return model.KolomSubUnitKerja
	}
	return ""
}

// LocationCounts menghitung sebaran karyawan per lokasi beserta pembagian
// laut/darat, urut jumlah menurun.
func LocationCounts(t model.Table) []LocationCount {
	col := LocationColumn(t)
	if col == "" {
		return []LocationCount{}
	}

	byName := map[string]*LocationCount{}
	for r := range t.Rows {
		v := t.Cell(r, col)
		if v.IsNull() {
			continue
		}
		name := v.String()
		lc, ok := byName[name]
		if !ok {
			lc = &LocationCount{Lokasi: name}
			byName[name] = lc
		}
		lc.Jumlah++
		jenis := t.Cell(r, model.KolomJenis)
		if isLaut(jenis) {
			lc.Laut++
		}
		if isDarat(jenis) {
			lc.Darat++
		}
	}

	out := make([]LocationCount, 0, len(byName))
	for _, lc := range byName {
		out = append(out, *lc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Jumlah != out[j].Jumlah {
			return out[i].Jumlah > out[j].Jumlah
		}
		return out[i].Lokasi < out[j].Lokasi
	})
	return out
}
