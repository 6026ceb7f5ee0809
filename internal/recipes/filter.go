package recipes

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// fold lower-cases s after composing it (NFC), so a decomposed "é" matches a
// precomposed one. Compatibility forms and multi-rune case folds ("ß", "ﬁ")
// are left alone.
func fold(c cases.Caser, s string) string {
	return c.String(norm.NFC.String(s))
}

// Filter returns the recipes whose title contains search, ignoring case.
// Order is preserved. An empty search returns list unchanged.
func Filter(list []Recipe, search string) []Recipe {
	if search == "" {
		return list
	}
	c := cases.Lower(language.Und)
	needle := fold(c, search)

	out := make([]Recipe, 0, len(list))
	for _, r := range list {
		if strings.Contains(fold(c, r.Title), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Suggest returns up to n recipes whose titles fuzzily match search, closest
// first. It is meant for the case where Filter found nothing.
func Suggest(list []Recipe, search string, n int) []Recipe {
	if search == "" || n <= 0 || len(list) == 0 {
		return nil
	}
	titles := make([]string, len(list))
	for i, r := range list {
		titles[i] = r.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(search, titles)
	sort.Stable(ranks)

	out := make([]Recipe, 0, n)
	for _, rk := range ranks {
		if len(out) == n {
			break
		}
		out = append(out, list[rk.OriginalIndex])
	}
	return out
}
