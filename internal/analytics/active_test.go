package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

var activeCols = []string{
	model.KolomStatusKepegawaian,
	model.KolomTanggalMasuk,
	model.KolomTanggalKeluar,
	model.KolomTanggalPensiun,
}

func TestIsActive(t *testing.T) {
	ref := date(2024, time.January, 1)
	tbl := rows(activeCols,
		[]model.Value{s("PKWTT"), d("2020-01-01"), d(""), d("")},          // aktif
		[]model.Value{s("PKWTT"), d("2024-01-02"), d(""), d("")},          // belum masuk
		[]model.Value{s("PKWTT"), d(""), d(""), d("")},                    // tanpa tanggal masuk
		[]model.Value{s("PKWT"), d("2020-01-01"), d("2023-12-31"), d("")}, // sudah keluar
		[]model.Value{s("PKWT"), d("2020-01-01"), d("2024-01-01"), d("")}, // keluar tepat ref
		[]model.Value{s("PKWT"), d("2020-01-01"), d(""), d("2023-06-01")}, // sudah pensiun
		[]model.Value{s("RESIGN"), d("2020-01-01"), d(""), d("")},         // status keluar
		[]model.Value{s("TERMINATED"), d("2020-01-01"), d(""), d("")},     // status keluar
		[]model.Value{s("CUTI"), d("2020-01-01"), d(""), d("")},           // cuti tetap aktif
		[]model.Value{s(""), d("2020-01-01"), d("2025-01-01"), d("2030-01-01")},
	)

	want := []bool{true, false, false, false, true, false, false, false, true, true}
	for r, w := range want {
		assert.Equal(t, w, IsActive(tbl, r, ref), "baris %d", r)
	}
	assert.Equal(t, 4, CountActive(tbl, ref))
}

func TestIsActive_SingleRowScenario(t *testing.T) {
	tbl := rows([]string{model.KolomTanggalMasuk}, []model.Value{d("2020-01-01")})

	assert.True(t, IsActive(tbl, 0, date(2024, time.January, 1)))
}

func TestActiveOnly_Idempotent(t *testing.T) {
	ref := date(2024, time.January, 1)
	tbl := rows(activeCols,
		[]model.Value{s("PKWTT"), d("2020-01-01"), d(""), d("")},
		[]model.Value{s("RESIGN"), d("2020-01-01"), d("2021-01-01"), d("")},
		[]model.Value{s("PKWT"), d("2025-01-01"), d(""), d("")},
	)

	once := ActiveOnly(tbl, ref)
	twice := ActiveOnly(once, ref)

	assert.Equal(t, 1, once.Len())
	assert.True(t, once.Equal(twice))
	assert.Equal(t, 3, tbl.Len(), "tabel sumber tidak berubah")
}

func TestActiveOnly_EmptyTable(t *testing.T) {
	got := ActiveOnly(model.Table{}, date(2024, time.January, 1))

	assert.True(t, got.Empty())
}
