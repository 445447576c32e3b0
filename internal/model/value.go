package model

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout adalah format tanggal untuk tampilan tabel dan ekspor CSV.
const DateLayout = "2006-01-02"

type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindDate
)

// Value adalah satu sel tabel: kosong, teks, atau tanggal.
type Value struct {
	Kind Kind
	Str  string
	At   time.Time
}

var Null = Value{}

func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// Date menyimpan tanggal tanpa komponen jam (UTC, 00:00).
func Date(t time.Time) Value {
	return Value{Kind: KindDate, At: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Cell mengubah string mentah dari loader menjadi Value. String kosong
// (atau hanya spasi) dianggap Null.
func Cell(raw string) Value {
	if strings.TrimSpace(raw) == "" {
		return Null
	}
	return Text(raw)
}

func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindDate:
		return v.At.Format(DateLayout)
	default:
		return ""
	}
}

func (v Value) Time() (time.Time, bool) {
	if v.Kind != KindDate {
		return time.Time{}, false
	}
	return v.At, true
}

func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Str == o.Str
	case KindDate:
		return v.At.Equal(o.At)
	}
	return true
}

// MarshalJSON menulis null, string, atau tanggal "2006-01-02".
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindNull {
		return []byte("null"), nil
	}
	return json.Marshal(v.String())
}
