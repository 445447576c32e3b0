package analytics

import (
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

const day = 24 * time.Hour

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween = (to - from) dalam hari kalender.
func daysBetween(from, to time.Time) int {
	return int(dayOf(to).Sub(dayOf(from)) / day)
}

// floorDiv membulatkan ke bawah, juga untuk bilangan negatif.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func dateAt(t model.Table, row int, col string) (time.Time, bool) {
	return t.Cell(row, col).Time()
}

// lastMonth mengembalikan hari pertama dan terakhir bulan kalender sebelum ref.
func lastMonth(ref time.Time) (time.Time, time.Time) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -1, 0), first.AddDate(0, 0, -1)
}
