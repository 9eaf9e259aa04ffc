package mentions

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/avaldez/geopulse/internal/feeds"
)

// TimeRange restricts mention queries to a lookback window.
type TimeRange string

const (
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	RangeAll TimeRange = "all"
)

// Filters narrows a per-country mention query. Zero values mean "all".
type Filters struct {
	TimeRange TimeRange
	Category  feeds.Category // empty = all categories
	Search    string         // free-text substring over title+description
}

func (f Filters) cacheKey(country string) string {
	return strings.ToLower(strings.TrimSpace(country)) + "|" +
		string(f.TimeRange) + "|" + string(f.Category)
}

// Service answers per-country mention queries over the current item
// pool. Results are cached per country+filters; the cache is advisory
// and the owner must call Invalidate whenever the pool changes. Search
// queries bypass the cache since they are dynamic.
type Service struct {
	extractor *Extractor

	mu    sync.Mutex
	cache map[string][]feeds.Item
}

// NewService creates a mentions service over the given extractor.
func NewService(extractor *Extractor) *Service {
	return &Service{
		extractor: extractor,
		cache:     make(map[string][]feeds.Item),
	}
}

// Invalidate clears the query cache. Call it whenever the underlying
// item pool is replaced.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string][]feeds.Item)
}

// MentionsFor returns all items mentioning the country, filtered and
// ordered newest first.
func (s *Service) MentionsFor(items []feeds.Item, country string, filters Filters) []feeds.Item {
	useCache := filters.Search == ""
	key := filters.cacheKey(country)

	if useCache {
		s.mu.Lock()
		cached, ok := s.cache[key]
		s.mu.Unlock()
		if ok {
			return cached
		}
	}

	var result []feeds.Item
	for _, item := range items {
		if s.extractor.Mentioned(item, country) {
			result = append(result, item)
		}
	}

	result = applyTimeFilter(result, filters.TimeRange, time.Now())
	result = applyCategoryFilter(result, filters.Category)
	result = applySearchFilter(result, filters.Search)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PubDate.After(result[j].PubDate)
	})

	if useCache {
		s.mu.Lock()
		s.cache[key] = result
		s.mu.Unlock()
	}
	return result
}

// CountFor returns the unfiltered number of items mentioning the country.
func (s *Service) CountFor(items []feeds.Item, country string) int {
	count := 0
	for _, item := range items {
		if s.extractor.Mentioned(item, country) {
			count++
		}
	}
	return count
}

func applyTimeFilter(items []feeds.Item, r TimeRange, now time.Time) []feeds.Item {
	var window time.Duration
	switch r {
	case Range24h:
		window = 24 * time.Hour
	case Range7d:
		window = 7 * 24 * time.Hour
	case Range30d:
		window = 30 * 24 * time.Hour
	default:
		return items
	}

	cutoff := now.Add(-window)
	result := make([]feeds.Item, 0, len(items))
	for _, item := range items {
		if !item.PubDate.Before(cutoff) {
			result = append(result, item)
		}
	}
	return result
}

func applyCategoryFilter(items []feeds.Item, category feeds.Category) []feeds.Item {
	if category == "" {
		return items
	}
	result := make([]feeds.Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			result = append(result, item)
		}
	}
	return result
}

func applySearchFilter(items []feeds.Item, query string) []feeds.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	result := make([]feeds.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.SearchText()), query) {
			result = append(result, item)
		}
	}
	return result
}
