package pipeline

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"2/1/2006 15:04",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2-Jan-2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"Jan 2006",
	"Jan-2006",
	"2006-01",
	"01/2006",
	"1/2006",
}

// Nama bulan Indonesia dan Inggris -> singkatan yang dikenali time.Parse.
var monthNames = map[string]string{
	"JANUARI": "Jan", "FEBRUARI": "Feb", "MARET": "Mar", "APRIL": "Apr",
	"MEI": "May", "JUNI": "Jun", "JULI": "Jul", "AGUSTUS": "Aug",
	"SEPTEMBER": "Sep", "OKTOBER": "Oct", "NOVEMBER": "Nov", "DESEMBER": "Dec",
	"JANUARY": "Jan", "FEBRUARY": "Feb", "MARCH": "Mar", "MAY": "May",
	"JUNE": "Jun", "JULY": "Jul", "AUGUST": "Aug", "OCTOBER": "Oct", "DECEMBER": "Dec",
	"AGU": "Aug", "AGT": "Aug", "OKT": "Oct", "DES": "Dec", "PEB": "Feb",
}

// ParseDate mencoba semua format yang dikenal. Format tanggal sumber
// berurutan hari-bulan-tahun; bilangan bulat dianggap tahun (1900-2100)
// atau nomor seri tanggal Excel.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if len(s) == 8 && strings.Trim(s, "0123456789") == "" {
		if t, err := time.Parse("20060102", s); err == nil {
			return t, true
		}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		// ParseFloat menerima "nan" dan "inf"
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return time.Time{}, false
		}
		return parseNumericDate(n)
	}

	s = translateMonths(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}
	return time.Time{}, false
}

func parseNumericDate(n float64) (time.Time, bool) {
	if n == float64(int(n)) && n >= 1900 && n <= 2100 {
		return time.Date(int(n), time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	if n < 1 || n > 2958465 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(n, false)
	if err != nil {
		return time.Time{}, false
	}
	return dateOnly(t), true
}

func translateMonths(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '-' || r == ',' })
	if len(fields) < 2 {
		return s
	}
	for _, f := range fields {
		if short, ok := monthNames[strings.ToUpper(f)]; ok {
			s = strings.Replace(s, f, short, 1)
		}
	}
	return s
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
