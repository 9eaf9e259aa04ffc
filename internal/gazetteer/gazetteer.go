// Package gazetteer holds the static reference data the narrative
// pipeline matches news text against: countries with textual variants
// and coordinates, plus hotspots, conflict zones, and strategic
// infrastructure used for per-country geographic signals.
package gazetteer

import (
	"regexp"
	"strings"

	"github.com/avaldez/geopulse/internal/logging"
)

// Entry is one gazetteer entity: canonical name, coordinates, and the
// textual variants (aliases, demonyms, capitals) it may appear as.
type Entry struct {
	Name     string
	Lat      float64
	Lon      float64
	Variants []string
}

// Index is the variant lookup built once per gazetteer version. Every
// lowercased, trimmed variant maps to its owning entry; the first entry
// registered for a variant wins and later duplicates are logged as a
// data-quality issue, not resolved by iteration order.
type Index struct {
	entries   []Entry
	byVariant map[string]*Entry
	patterns  []variantPattern
}

type variantPattern struct {
	re    *regexp.Regexp
	entry *Entry
}

// NewIndex builds the variant lookup. Registration order is the slice
// order of entries, so ownership of an ambiguous variant is pinned to
// the data file, never to map iteration.
func NewIndex(entries []Entry) *Index {
	idx := &Index{
		entries:   entries,
		byVariant: make(map[string]*Entry),
	}

	for i := range idx.entries {
		entry := &idx.entries[i]
		for _, variant := range entry.Variants {
			normalized := strings.ToLower(strings.TrimSpace(variant))
			if normalized == "" {
				continue
			}
			if owner, ok := idx.byVariant[normalized]; ok {
				if owner.Name != entry.Name {
					logging.Warn("duplicate gazetteer variant",
						"variant", normalized, "owner", owner.Name, "ignored", entry.Name)
				}
				continue
			}
			idx.byVariant[normalized] = entry
			idx.patterns = append(idx.patterns, variantPattern{
				re:    WordBoundaryPattern(normalized),
				entry: entry,
			})
		}
	}

	return idx
}

// WordBoundaryPattern compiles a whole-word pattern for a lowercased
// variant. Word-boundary semantics keep "chad" from matching inside
// "chadwick".
func WordBoundaryPattern(variant string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(variant) + `\b`)
}

// Entries returns all gazetteer entries in registration order.
func (idx *Index) Entries() []Entry {
	return idx.entries
}

// Lookup resolves a name or variant to its entry.
func (idx *Index) Lookup(name string) (*Entry, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if entry, ok := idx.byVariant[normalized]; ok {
		return entry, true
	}
	for i := range idx.entries {
		if strings.EqualFold(idx.entries[i].Name, name) {
			return &idx.entries[i], true
		}
	}
	return nil, false
}

// Match returns the set of entries whose variants appear as whole words
// in the text. An entry matching via several variants is reported once.
func (idx *Index) Match(text string) []*Entry {
	lower := strings.ToLower(text)

	seen := make(map[string]bool)
	var found []*Entry
	for _, vp := range idx.patterns {
		if seen[vp.entry.Name] {
			continue
		}
		if vp.re.MatchString(lower) {
			seen[vp.entry.Name] = true
			found = append(found, vp.entry)
		}
	}
	return found
}
