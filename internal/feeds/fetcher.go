package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/avaldez/geopulse/internal/logging"
)

// Fetcher retrieves items from RSS/Atom sources and normalizes them into
// the pipeline's Item shape. Feed failures are absorbed: a broken source
// yields zero items and a warning, never an error surfaced to callers of
// FetchAll. Complementary feeds failing is expected behavior.
type Fetcher struct {
	client     *http.Client
	parser     *gofeed.Parser
	limiter    *rate.Limiter
	cache      *Cache
	filter     *Filter
	maxPerFeed int
}

// NewFetcher creates a Fetcher with the given HTTP timeout and per-feed
// item cap (0 means unlimited). Requests are rate limited to avoid
// hammering feed hosts during a full refresh.
func NewFetcher(timeout time.Duration, maxPerFeed int) *Fetcher {
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		parser:     gofeed.NewParser(),
		limiter:    rate.NewLimiter(rate.Limit(8), 4),
		cache:      NewCache(),
		filter:     DefaultFilter(),
		maxPerFeed: maxPerFeed,
	}
}

// Cache exposes the fetcher's response cache so the orchestrator can
// clear it when a forced refresh is requested.
func (f *Fetcher) Cache() *Cache {
	return f.cache
}

// Fetch retrieves and normalizes one feed. Cached responses are returned
// as-is; a cache hit is indistinguishable from a refetch within one
// session.
func (f *Fetcher) Fetch(ctx context.Context, cfg FeedConfig) ([]Item, error) {
	if items, ok := f.cache.Get(cfg.URL); ok {
		return items, nil
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "geopulse/0.1 (+https://github.com/avaldez/geopulse)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	now := time.Now()
	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Title == "" || entry.Link == "" {
			continue
		}
		items = append(items, convertFeedItem(entry, cfg, now))
		if f.maxPerFeed > 0 && len(items) >= f.maxPerFeed {
			break
		}
	}
	items = f.filter.FilterItems(items)

	f.cache.Put(cfg.URL, items)
	return items, nil
}

// FetchAll retrieves every configured feed and returns the deduplicated,
// newest-first item pool per category. Individual feed failures degrade
// to empty results.
func (f *Fetcher) FetchAll(ctx context.Context, configs []FeedConfig) map[Category][]Item {
	results := make(map[Category][]Item, len(Categories))
	for _, c := range Categories {
		results[c] = nil
	}

	for _, cfg := range configs {
		items, err := f.Fetch(ctx, cfg)
		if err != nil {
			if cfg.Primary {
				logging.Warn("primary feed failed", "feed", cfg.Name, "url", cfg.URL, "err", err)
			} else {
				logging.Debug("feed failed", "feed", cfg.Name, "err", err)
			}
			continue
		}
		results[cfg.Category] = append(results[cfg.Category], items...)
	}

	for c, items := range results {
		deduped := Dedupe(items)
		SortByDate(deduped)
		results[c] = deduped
		logging.Info("category refreshed", "category", string(c), "items", len(deduped))
	}
	return results
}

// convertFeedItem converts a gofeed.Item to an Item.
func convertFeedItem(entry *gofeed.Item, cfg FeedConfig, fetchTime time.Time) Item {
	published := fetchTime
	if entry.PublishedParsed != nil {
		published = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		published = *entry.UpdatedParsed
	}

	return Item{
		ID:          ItemID(entry.Title, cfg.Category),
		Title:       entry.Title,
		Link:        entry.Link,
		Source:      extractSource(entry, cfg),
		PubDate:     published,
		Category:    cfg.Category,
		Alert:       cfg.Alert,
		Description: strings.TrimSpace(entry.Description),
	}
}

// extractSource derives the display source label. Google News titles
// embed the source as "Title - Source"; otherwise fall back to the item
// author, the link hostname, and finally the configured feed name.
func extractSource(entry *gofeed.Item, cfg FeedConfig) string {
	if parts := strings.Split(entry.Title, " - "); len(parts) > 1 {
		if label := strings.TrimSpace(parts[len(parts)-1]); label != "" && len(label) < 40 {
			return strings.ToUpper(label)
		}
	}

	if entry.Author != nil && entry.Author.Name != "" {
		return strings.ToUpper(entry.Author.Name)
	}

	if entry.Link != "" {
		if u, err := url.Parse(entry.Link); err == nil && u.Hostname() != "" {
			host := strings.TrimPrefix(u.Hostname(), "www.")
			parts := strings.Split(host, ".")
			name := parts[0]
			if len(parts) > 1 {
				name = parts[len(parts)-2]
			}
			return strings.ToUpper(name)
		}
	}

	return strings.ToUpper(cfg.Name)
}
