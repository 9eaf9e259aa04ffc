package mentions

import (
	"testing"
	"time"

	"github.com/avaldez/geopulse/internal/feeds"
)

func TestMentionsForFiltersAndSorts(t *testing.T) {
	svc := NewService(testExtractor())
	now := time.Now()

	items := []feeds.Item{
		poolItem("France hosts summit", "", now.Add(-2*time.Hour)),
		poolItem("Strikes continue across France", "", now.Add(-30*time.Minute)),
		poolItem("France referenced in old report", "", now.Add(-48*time.Hour)),
		poolItem("Germany updates budget", "", now.Add(-1*time.Hour)),
	}

	got := svc.MentionsFor(items, "France", Filters{TimeRange: Range24h})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (old item and Germany excluded)", len(got))
	}
	if got[0].Title != "Strikes continue across France" {
		t.Errorf("not sorted newest first: got[0] = %q", got[0].Title)
	}
}

func TestMentionsForCategoryFilter(t *testing.T) {
	svc := NewService(testExtractor())
	now := time.Now()

	finance := poolItem("France markets climb", "", now)
	finance.Category = feeds.CategoryFinance
	world := poolItem("France hosts summit", "", now)

	got := svc.MentionsFor([]feeds.Item{finance, world}, "France", Filters{Category: feeds.CategoryFinance})
	if len(got) != 1 || got[0].Category != feeds.CategoryFinance {
		t.Errorf("got = %+v, want only the finance item", got)
	}
}

func TestMentionsForSearchFilter(t *testing.T) {
	svc := NewService(testExtractor())
	now := time.Now()

	items := []feeds.Item{
		poolItem("France hosts summit", "leaders gather", now),
		poolItem("France strikes continue", "unions protest", now),
	}

	got := svc.MentionsFor(items, "France", Filters{Search: "unions"})
	if len(got) != 1 || got[0].Title != "France strikes continue" {
		t.Errorf("got = %+v, want only the matching item", got)
	}
}

func TestMentionsForAcceptsVariants(t *testing.T) {
	svc := NewService(testExtractor())
	now := time.Now()

	items := []feeds.Item{poolItem("Paris hosts summit", "", now)}

	// Query by variant, match through a different variant.
	got := svc.MentionsFor(items, "french", Filters{})
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 (variant query should resolve)", len(got))
	}
}

func TestMentionsForCacheInvalidation(t *testing.T) {
	svc := NewService(testExtractor())
	now := time.Now()

	items := []feeds.Item{poolItem("France hosts summit", "", now)}
	first := svc.MentionsFor(items, "France", Filters{})
	if len(first) != 1 {
		t.Fatalf("len = %d, want 1", len(first))
	}

	// Same filters with a new pool hit the stale cache until invalidated.
	more := append(items, poolItem("France strikes continue", "", now))
	cached := svc.MentionsFor(more, "France", Filters{})
	if len(cached) != 1 {
		t.Fatalf("cache should still serve the old result, got %d items", len(cached))
	}

	svc.Invalidate()
	fresh := svc.MentionsFor(more, "France", Filters{})
	if len(fresh) != 2 {
		t.Errorf("len = %d after Invalidate, want 2", len(fresh))
	}
}

func TestMentionsForSearchBypassesCache(t *testing.T) {
	svc := NewService(testExtractor())
	now := time.Now()

	items := []feeds.Item{poolItem("France hosts summit", "", now)}
	svc.MentionsFor(items, "France", Filters{Search: "summit"})

	more := append(items, poolItem("France summit continues", "", now))
	got := svc.MentionsFor(more, "France", Filters{Search: "summit"})
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (search queries are never cached)", len(got))
	}
}

func TestCountFor(t *testing.T) {
	svc := NewService(testExtractor())
	now := time.Now()

	items := []feeds.Item{
		poolItem("France hosts summit", "", now),
		poolItem("Strikes continue across France", "", now.Add(-48*time.Hour)),
		poolItem("Germany updates budget", "", now),
	}

	if got := svc.CountFor(items, "France"); got != 2 {
		t.Errorf("CountFor = %d, want 2 (no time filtering)", got)
	}
}
