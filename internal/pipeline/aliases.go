package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"gopkg.in/yaml.v3"
)

// Alias memetakan satu nama kolom sumber ke nama kanonik.
type Alias struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultAliases mencakup beberapa format ekspor HRIS sekaligus. Urutan
// penting: bila dua varian untuk kolom kanonik yang sama muncul bersamaan,
// varian yang lebih dulu di daftar ini yang dipakai.
var DefaultAliases = []Alias{
	{"Status_Kepegawaian", model.KolomStatusKepegawaian},
	{"Sub_unker", model.KolomSubUnitKerja},
	{"Unit_Kerja", model.KolomUnitKerja},
	{"TglLahir", model.KolomTanggalLahir},
	{"Keaktifan", model.KolomStatusAktif},
	{"Klasifikasi_Jabatan", model.KolomKlasifikasiJabatan},
	{"Department_Name", model.KolomDepartmentName},
	{"Retirement_Date", model.KolomTanggalPensiun},
	{"Jenis_Kelamin", model.KolomJenisKelamin},
	{"Lokasi_Kerja", model.KolomLokasiKerja},
	{"Bulan", model.KolomTanggalMasuk},
	{"Retirement Date", model.KolomTanggalPensiun},

	{"Status_Aktif", model.KolomStatusAktif},
	{"Sub_Unit_Kerja", model.KolomSubUnitKerja},
	{"Tanggal_Masuk", model.KolomTanggalMasuk},
	{"Tanggal_Keluar", model.KolomTanggalKeluar},
	{"Tanggal_Lahir", model.KolomTanggalLahir},
	{"Tanggal_Pensiun", model.KolomTanggalPensiun},
	{"Kelas_Kapal", model.KolomKelasKapal},
	{"Band_Level", model.KolomBandLevel},

	{"Tanggal_Rencana_Resign", model.KolomTanggalRencanaResign},
	{"Resign_Date", model.KolomTanggalRencanaResign},
	{"Resign Date", model.KolomTanggalRencanaResign},
}

type aliasFile struct {
	Aliases []Alias `yaml:"aliases"`
}

// LoadAliases membaca alias tambahan dari dokumen YAML:
//
//	aliases:
//	  - from: Emp_Status
//	    to: Status Kepegawaian
func LoadAliases(r io.Reader) ([]Alias, error) {
	var f aliasFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal membaca alias kolom: %w", err)
	}
	out := make([]Alias, 0, len(f.Aliases))
	for _, a := range f.Aliases {
		a.From = strings.TrimSpace(a.From)
		a.To = strings.TrimSpace(a.To)
		if a.From == "" || a.To == "" {
			return nil, fmt.Errorf("alias kolom tidak lengkap: %q -> %q", a.From, a.To)
		}
		out = append(out, a)
	}
	return out, nil
}

// LoadAliasFile adalah LoadAliases dari path; path kosong berarti tanpa alias tambahan.
func LoadAliasFile(path string) ([]Alias, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file alias %s: %w", path, err)
	}
	defer f.Close()
	return LoadAliases(f)
}
