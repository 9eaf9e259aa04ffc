// Package mentions extracts country mentions from news text and serves
// filtered per-country mention queries.
package mentions

import (
	"sort"
	"time"

	"github.com/avaldez/geopulse/internal/feeds"
	"github.com/avaldez/geopulse/internal/gazetteer"
)

// CountryMention is the aggregated mention record for one country,
// recomputed fresh from the item pool on every extraction pass.
type CountryMention struct {
	Name          string
	Lat           float64
	Lon           float64
	MentionCount  int
	LatestMention time.Time
}

// Extractor scans news text against the gazetteer index.
type Extractor struct {
	idx *gazetteer.Index
}

// NewExtractor creates an extractor over the given gazetteer index.
func NewExtractor(idx *gazetteer.Index) *Extractor {
	return &Extractor{idx: idx}
}

// Index returns the underlying gazetteer index.
func (e *Extractor) Index() *gazetteer.Index {
	return e.idx
}

// FromText returns the countries mentioned in a single text. A country
// matched through several variants is reported once.
func (e *Extractor) FromText(text string) []*gazetteer.Entry {
	return e.idx.Match(text)
}

// Extract aggregates mentions across the item pool. Each item increments
// a country's count at most once, and the most recent contributing
// pubDate is kept. Countries that never match are omitted entirely.
// The result is sorted by mention count descending, ties left in
// first-mention order.
func (e *Extractor) Extract(items []feeds.Item) []CountryMention {
	type acc struct {
		entry  *gazetteer.Entry
		count  int
		latest time.Time
	}

	byName := make(map[string]*acc)
	var order []string

	for _, item := range items {
		for _, entry := range e.FromText(item.SearchText()) {
			a, ok := byName[entry.Name]
			if !ok {
				a = &acc{entry: entry, latest: item.PubDate}
				byName[entry.Name] = a
				order = append(order, entry.Name)
			}
			a.count++
			if item.PubDate.After(a.latest) {
				a.latest = item.PubDate
			}
		}
	}

	result := make([]CountryMention, 0, len(order))
	for _, name := range order {
		a := byName[name]
		result = append(result, CountryMention{
			Name:          a.entry.Name,
			Lat:           a.entry.Lat,
			Lon:           a.entry.Lon,
			MentionCount:  a.count,
			LatestMention: a.latest,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MentionCount > result[j].MentionCount
	})
	return result
}

// Mentioned reports whether the item mentions the given country, using
// the same matching rules as Extract so counts and queries agree.
func (e *Extractor) Mentioned(item feeds.Item, country string) bool {
	target, ok := e.idx.Lookup(country)
	if !ok {
		return false
	}
	for _, entry := range e.FromText(item.SearchText()) {
		if entry.Name == target.Name {
			return true
		}
	}
	return false
}
