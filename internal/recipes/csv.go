package recipes

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

var csvDefaults = map[string]int{
	"id":            0,
	"title":         1,
	"recipepicture": 2,
}

var csvAliases = map[string]string{
	"recipe_id":      "id",
	"name":           "title",
	"picture":        "recipepicture",
	"recipe_picture": "recipepicture",
	"image":          "recipepicture",
	"image_url":      "recipepicture",
}

// ParseCSV reads a header-aware CSV export. Columns are matched by normalized
// header name; when no header is recognized the layout
//
//	id,title,recipePicture
//
// is assumed. Rows without an id or title are skipped.
func ParseCSV(reader io.Reader) ([]Recipe, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	first, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	headerMap := make(map[string]int, len(first))
	for i, h := range first {
		n := normalizeHeader(h)
		if alias, ok := csvAliases[n]; ok {
			n = alias
		}
		headerMap[n] = i
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	// No known column names: the first row is data.
	_, hasID := headerMap["id"]
	_, hasTitle := headerMap["title"]
	if !hasID && !hasTitle {
		headerMap = map[string]int{}
		records = append([][]string{first}, records...)
	}

	getIndex := func(name string) int {
		if i, ok := headerMap[name]; ok {
			return i
		}
		if d, ok := csvDefaults[name]; ok {
			return d
		}
		return -1
	}
	idIdx := getIndex("id")
	titleIdx := getIndex("title")
	picIdx := getIndex("recipepicture")

	get := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	var out []Recipe
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		id, title := get(rec, idIdx), get(rec, titleIdx)
		if id == "" || title == "" {
			continue
		}
		out = append(out, Recipe{
			ID:            ID(id),
			Title:         title,
			RecipePicture: get(rec, picIdx),
		})
	}
	return validate(out)
}

// normalizeHeader lowercases and trims a header, maps spaces and dashes to
// underscores and drops quotes, so "Recipe Picture" and "recipe-picture" match.
// "recipePicture" becomes "recipepicture".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	h = strings.ReplaceAll(h, "\"", "")
	h = strings.ReplaceAll(h, "`", "")
	for strings.Contains(h, "__") {
		h = strings.ReplaceAll(h, "__", "_")
	}
	return h
}
