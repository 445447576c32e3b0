package model

// Lokasi adalah titik pelabuhan dari dataset GeoJSON referensi.
type Lokasi struct {
	NamaLokasi string  `json:"nama_lokasi"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Marker adalah titik peta beserta sebaran karyawannya.
type Marker struct {
	Lokasi
	Jumlah int    `json:"jumlah_karyawan"`
	Laut   int    `json:"karyawan_laut"`
	Darat  int    `json:"karyawan_darat"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
}
