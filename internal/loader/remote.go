package loader

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/fetch"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

var sheetPath = regexp.MustCompile(`^/spreadsheets/d/([A-Za-z0-9_-]+)`)

// ExportURL mengubah tautan Google Sheets menjadi tautan ekspor CSV.
// URL lain dikembalikan apa adanya.
func ExportURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: URL tidak valid", ErrUnreadableSource)
	}
	if u.Host != "docs.google.com" {
		return raw, nil
	}
	m := sheetPath.FindStringSubmatch(u.Path)
	if m == nil {
		return raw, nil
	}

	gid := u.Query().Get("gid")
	if gid == "" && u.Fragment != "" {
		if frag, err := url.ParseQuery(u.Fragment); err == nil {
			gid = frag.Get("gid")
		}
	}
	out := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", m[1])
	if gid != "" {
		out += "&gid=" + url.QueryEscape(gid)
	}
	return out, nil
}

// LoadRemote mengunduh spreadsheet sebagai CSV lalu membacanya seperti unggahan.
func LoadRemote(get fetch.Func, raw string) (model.Table, error) {
	target, err := ExportURL(raw)
	if err != nil {
		return model.Table{}, err
	}
	body, err := get(target)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	return Load("remote.csv", bytes.NewReader(body))
}
