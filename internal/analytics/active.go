package analytics

import (
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// Status yang tidak pernah dihitung aktif, apapun tanggalnya.
var inactiveStatuses = map[string]bool{
	model.StatusResign:     true,
	model.StatusPensiun:    true,
	model.StatusTerminated: true,
}

// IsActive: karyawan aktif pada tanggal ref bila sudah masuk (<= ref),
// belum keluar dan belum pensiun (tanggal kosong atau >= ref), dan status
// akhirnya bukan RESIGN/PENSIUN/TERMINATED.
func IsActive(t model.Table, row int, ref time.Time) bool {
	ref = dayOf(ref)

	masuk, ok := dateAt(t, row, model.KolomTanggalMasuk)
	if !ok || masuk.After(ref) {
		return false
	}
	if keluar, ok := dateAt(t, row, model.KolomTanggalKeluar); ok && keluar.Before(ref) {
		return false
	}
	if pensiun, ok := dateAt(t, row, model.KolomTanggalPensiun); ok && pensiun.Before(ref) {
		return false
	}
	return !inactiveStatuses[t.Cell(row, model.KolomStatusKepegawaian).String()]
}

// ActiveOnly menyaring karyawan aktif pada ref. Idempoten.
func ActiveOnly(t model.Table, ref time.Time) model.Table {
	return t.Filter(func(row int) bool { return IsActive(t, row, ref) })
}

func CountActive(t model.Table, ref time.Time) int {
	n := 0
	for r := range t.Rows {
		if IsActive(t, r, ref) {
			n++
		}
	}
	return n
}
