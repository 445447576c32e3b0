package geo

import (
	"strings"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/analytics"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// Tier menentukan warna dan ikon marker dari jumlah karyawan.
func Tier(jumlah int) (color, icon string) {
	switch {
	case jumlah > 50:
		return "red", "star"
	case jumlah > 20:
		return "orange", "info-sign"
	case jumlah > 0:
		return "blue", "user"
	}
	return "gray", "map-marker"
}

// Markers membuat satu marker untuk tiap lokasi referensi. Lokasi tanpa
// karyawan tetap ditampilkan dengan jumlah 0.
func Markers(counts []analytics.LocationCount, lookup Lookup) []model.Marker {
	byKey := make(map[string]analytics.LocationCount, len(counts))
	for _, c := range counts {
		key := strings.ToUpper(matchKey(c.Lokasi))
		agg := byKey[key]
		agg.Jumlah += c.Jumlah
		agg.Laut += c.Laut
		agg.Darat += c.Darat
		byKey[key] = agg
	}

	markers := make([]model.Marker, 0, len(lookup.Locations))
	for _, loc := range lookup.Locations {
		c := byKey[strings.ToUpper(matchKey(loc.NamaLokasi))]
		color, icon := Tier(c.Jumlah)
		markers = append(markers, model.Marker{
			Lokasi: loc,
			Jumlah: c.Jumlah,
			Laut:   c.Laut,
			Darat:  c.Darat,
			Color:  color,
			Icon:   icon,
		})
	}
	return markers
}
