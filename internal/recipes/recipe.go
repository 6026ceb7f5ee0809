package recipes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a recipe on the remote service. The service emits numeric ids,
// exported lists may carry strings; both decode into the same value.
type ID string

func (id ID) String() string { return string(id) }

// Less orders numeric ids by value and everything else as text. Numeric ids
// sort before non-numeric ones.
func (id ID) Less(other ID) bool {
	a, aErr := strconv.ParseInt(string(id), 10, 64)
	b, bErr := strconv.ParseInt(string(other), 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return a < b
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	}
	return id < other
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("recipe id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// ParseID parses an id typed on the command line.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty recipe id")
	}
	return ID(s), nil
}

// Recipe is a recipe as listed by the service.
type Recipe struct {
	ID            ID     `json:"id"`
	Title         string `json:"title"`
	RecipePicture string `json:"recipePicture"`
}

// IDs returns the ids of list in order.
func IDs(list []Recipe) []ID {
	out := make([]ID, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}
