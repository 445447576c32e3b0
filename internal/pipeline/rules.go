package pipeline

import (
	"regexp"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// RewriteRule mengganti seluruh nilai menjadi Value bila Pattern cocok.
type RewriteRule struct {
	Pattern *regexp.Regexp
	Value   string
}

// StatusRules diterapkan berurutan pada nilai yang sudah di-trim dan di-upper.
// Tiap aturan melihat hasil aturan sebelumnya.
var StatusRules = []RewriteRule{
	{regexp.MustCompile(`CONTRACT`), model.StatusPKWT},
	{regexp.MustCompile(`EMPLOYEE`), model.StatusPKWTT},
}

var GenderRules = []RewriteRule{
	{regexp.MustCompile(`^L`), model.LakiLaki},
	{regexp.MustCompile(`^P`), model.Perempuan},
}

func rewrite(rules []RewriteRule, v string) string {
	for _, r := range rules {
		if r.Pattern.MatchString(v) {
			v = r.Value
		}
	}
	return v
}

// OverrideRule memaksa status kepegawaian bila tanggal pada Column sudah
// lewat (<= tanggal referensi).
type OverrideRule struct {
	Column string
	Status string
}

func (r OverrideRule) Matches(date model.Value, ref time.Time) bool {
	t, ok := date.Time()
	return ok && !t.After(ref)
}

// StatusOverrides dievaluasi berurutan, aturan cocok terakhir yang menang:
// karyawan dengan tanggal pensiun dan tanggal keluar yang sama-sama lewat
// berakhir RESIGN.
var StatusOverrides = []OverrideRule{
	{Column: model.KolomTanggalPensiun, Status: model.StatusPensiun},
	{Column: model.KolomTanggalKeluar, Status: model.StatusResign},
}

// ExitStatuses menandai karyawan Tidak Aktif.
var ExitStatuses = map[string]bool{
	model.StatusPensiun:    true,
	model.StatusResign:     true,
	model.StatusTerminated: true,
	model.StatusCuti:       true,
}

// StatusAktif menurunkan Status Aktif dari status kepegawaian final.
func StatusAktif(status string) string {
	if ExitStatuses[status] {
		return model.TidakAktif
	}
	return model.Aktif
}
