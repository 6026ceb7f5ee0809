package recipes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads a recipe list from path. The format is chosen by extension.
func Parse(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return ParseFromBytes(data, path)
}

// ParseFromBytes parses file content directly from memory
func ParseFromBytes(data []byte, filename string) ([]Recipe, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		return DecodeList(data)
	case ".csv":
		return ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown file format: %s (must be .json or .csv)", ext)
	}
}

// DecodeList decodes a recipe list that is either a bare array or wrapped in
// a {"data": [...]} or {"recipes": [...]} object.
func DecodeList(raw []byte) ([]Recipe, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	var list []Recipe
	if err := json.Unmarshal(raw, &list); err == nil {
		return validate(list)
	}

	var wrapper struct {
		Data    json.RawMessage `json:"data"`
		Recipes json.RawMessage `json:"recipes"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	inner := wrapper.Data
	if len(inner) == 0 {
		inner = wrapper.Recipes
	}
	if len(inner) == 0 {
		return nil, fmt.Errorf("unhandled data shape: %s", truncate(raw, 120))
	}
	if err := json.Unmarshal(inner, &list); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	return validate(list)
}

func validate(list []Recipe) ([]Recipe, error) {
	seen := make(map[ID]struct{}, len(list))
	for i, r := range list {
		if r.ID == "" {
			return nil, fmt.Errorf("recipe %d (%q): missing id", i, r.Title)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %s", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return list, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
