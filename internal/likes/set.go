package likes

import (
	"sort"

	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

// Set is the client-side mirror of which recipes the current user likes.
type Set map[recipes.ID]struct{}

func NewSet(ids ...recipes.ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id recipes.ID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Add(id recipes.ID) { s[id] = struct{}{} }

func (s Set) Remove(id recipes.ID) { delete(s, id) }

// Toggle flips membership of id and returns the new membership.
func (s Set) Toggle(id recipes.ID) bool {
	if s.Has(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

// Apply records the outcome of a successful toggle. When the service reported
// the resulting state it is trusted, otherwise the service is assumed to have
// flipped the like and the local membership is flipped too.
func (s Set) Apply(id recipes.ID, state *bool) bool {
	if state == nil {
		return s.Toggle(id)
	}
	if *state {
		s.Add(id)
	} else {
		s.Remove(id)
	}
	return *state
}

// IDs returns the members in ascending order, numeric ids by value.
func (s Set) IDs() []recipes.ID {
	out := make([]recipes.ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
