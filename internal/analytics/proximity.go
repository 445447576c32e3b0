package analytics

import (
	"strconv"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

const (
	PensionAge = 60

	// Jendela "mendekati": dalam bulan (30 hari), inklusif.
	RetirementWindowMonths = 12
	ResignWindowMonths     = 1
)

// PreciseAge menghitung usia dengan memperhitungkan bulan dan tanggal lahir.
func PreciseAge(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// PensionDate adalah ulang tahun ke-60. Kelahiran 29 Februari jatuh ke
// 28 Februari bila tahun tersebut bukan kabisat.
func PensionDate(birth time.Time) time.Time {
	y := birth.Year() + PensionAge
	d := birth.Day()
	if birth.Month() == time.February && d == 29 && !isLeap(y) {
		d = 28
	}
	return time.Date(y, birth.Month(), d, 0, 0, 0, 0, time.UTC)
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// MonthsToPension = hari menuju ulang tahun ke-60 dibagi 30 (dibulatkan ke
// bawah). Negatif bila sudah lewat.
func MonthsToPension(birth, ref time.Time) int {
	return floorDiv(daysBetween(ref, PensionDate(birth)), 30)
}

// MonthsToResign = hari menuju tanggal rencana resign dibagi 30.
func MonthsToResign(planned, ref time.Time) int {
	return floorDiv(daysBetween(ref, planned), 30)
}

// RetirementProximity memilih karyawan yang pensiun dalam 0-12 bulan ke
// depan, dengan kolom Usia dan Sisa Bulan ditambahkan.
func RetirementProximity(t model.Table, ref time.Time) model.Table {
	ref = dayOf(ref)
	return proximity(t, model.KolomTanggalLahir, RetirementWindowMonths, func(_ int, birth time.Time) (int, int) {
		return PreciseAge(birth, ref), MonthsToPension(birth, ref)
	})
}

// ResignationProximity memilih karyawan dengan rencana resign dalam 0-1 bulan.
func ResignationProximity(t model.Table, ref time.Time) model.Table {
	ref = dayOf(ref)
	return proximity(t, model.KolomTanggalRencanaResign, ResignWindowMonths, func(row int, planned time.Time) (int, int) {
		age := -1
		if birth, ok := dateAt(t, row, model.KolomTanggalLahir); ok {
			age = PreciseAge(birth, ref)
		}
		return age, MonthsToResign(planned, ref)
	})
}

func proximity(t model.Table, col string, window int, measure func(int, time.Time) (int, int)) model.Table {
	var keep []int
	var ages, months []model.Value
	for r := range t.Rows {
		d, ok := dateAt(t, r, col)
		if !ok {
			continue
		}
		age, m := measure(r, d)
		if m < 0 || m > window {
			continue
		}
		keep = append(keep, r)
		if age >= 0 {
			ages = append(ages, model.Text(strconv.Itoa(age)))
		} else {
			ages = append(ages, model.Null)
		}
		months = append(months, model.Text(strconv.Itoa(m)))
	}

	idx := 0
	out := t.Filter(func(row int) bool {
		if idx < len(keep) && keep[idx] == row {
			idx++
			return true
		}
		return false
	})
	out = out.WithColumn(model.KolomUsia, ages)
	return out.WithColumn(model.KolomSisaBulan, months)
}
