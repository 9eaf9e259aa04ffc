// Package feeds supplies the normalized news-item pool the narrative
// pipeline consumes: a curated RSS source list, a gofeed-based fetcher,
// title-keyed deduplication, and an explicit per-URL response cache.
package feeds

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// Category groups feed sources by editorial beat.
type Category string

const (
	CategoryWorld        Category = "world"
	CategoryGeopolitical Category = "geopolitical"
	CategoryTechnology   Category = "technology"
	CategoryAI           Category = "ai"
	CategoryFinance      Category = "finance"
)

// Categories lists all feed categories in display order.
var Categories = []Category{
	CategoryWorld,
	CategoryGeopolitical,
	CategoryTechnology,
	CategoryAI,
	CategoryFinance,
}

// Item is a single normalized news item. The title is the deduplication
// key across the whole pipeline: two items with the same normalized title
// are the same news event and only the first-seen instance is retained.
type Item struct {
	ID          string
	Title       string
	Link        string
	Source      string // display label, e.g. "BBC", "REUTERS"
	PubDate     time.Time
	Category    Category
	Alert       bool // set for items from alert-class sources
	Description string
}

// SearchText returns the text the pipeline matches against: title plus
// description, with a missing description treated as empty.
func (it Item) SearchText() string {
	if it.Description == "" {
		return it.Title
	}
	return it.Title + " " + it.Description
}

// NormalizeTitle reduces a title to its deduplication key: lowercased,
// whitespace-collapsed, punctuation stripped.
func NormalizeTitle(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	fields := strings.Fields(lower)
	joined := strings.Join(fields, " ")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ItemID derives a stable item identifier from the title and category.
// Titles are the primary key at the feed layer, so the ID is too.
func ItemID(title string, category Category) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Join(strings.Fields(slug), "-")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	return string(category) + "-" + slug
}

// Dedupe removes items whose normalized titles collide, keeping the
// first-seen instance. Input order is preserved, so primary feeds listed
// before complementary ones win ties.
func Dedupe(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	result := make([]Item, 0, len(items))
	for _, item := range items {
		key := NormalizeTitle(item.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, item)
	}
	return result
}

// SortByDate orders items newest first, in place.
func SortByDate(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PubDate.After(items[j].PubDate)
	})
}
