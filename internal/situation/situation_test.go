package situation

import (
	"fmt"
	"testing"
	"time"

	"github.com/avaldez/geopulse/internal/feeds"
	"github.com/avaldez/geopulse/internal/gazetteer"
	"github.com/avaldez/geopulse/internal/mentions"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	idx := gazetteer.NewIndex(gazetteer.Countries)
	return NewBuilder(mentions.NewExtractor(idx))
}

func item(title string, pubDate time.Time) feeds.Item {
	return feeds.Item{
		ID:       feeds.ItemID(title, feeds.CategoryWorld),
		Title:    title,
		Source:   "TEST",
		PubDate:  pubDate,
		Category: feeds.CategoryWorld,
	}
}

func TestLocalTimeAt(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		lon  float64
		want string
	}{
		{"greenwich", 0, "3:30 PM"},
		{"beijing", 116.4, "11:30 PM"},
		{"washington", -77.0, "10:30 AM"},
		{"wraps past midnight", 135.0, "12:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalTimeAt(tt.lon, now); got != tt.want {
				t.Errorf("LocalTimeAt(%v) = %q, want %q", tt.lon, got, tt.want)
			}
		})
	}
}

func TestLocalTimeAtMidnightIsTwelveAM(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 5, 0, 0, time.UTC)
	if got := LocalTimeAt(0, now); got != "12:05 AM" {
		t.Errorf("LocalTimeAt = %q, want 12:05 AM", got)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Minute, "30m ago"},
		{5 * time.Hour, "5h ago"},
		{3 * 24 * time.Hour, "3d ago"},
	}

	for _, tt := range tests {
		if got := TimeAgo(now.Add(-tt.age), now); got != tt.want {
			t.Errorf("TimeAgo(-%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestEventTypeOf(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		item feeds.Item
		want EventType
	}{
		{
			name: "alert wins",
			item: func() feeds.Item {
				it := item("War escalates near nuclear facility", now)
				it.Alert = true
				return it
			}(),
			want: EventAlert,
		},
		{"conflict keyword", item("Military strike reported overnight", now), EventConflict},
		{"infrastructure keyword", item("Subsea cable damaged in storm", now), EventInfrastructure},
		{"conflict beats infrastructure", item("Attack on power plant confirmed", now), EventConflict},
		{"plain news", item("Leaders meet for trade talks", now), EventNews},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventTypeOf(tt.item); got != tt.want {
				t.Errorf("EventTypeOf = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestActivityLevelFor(t *testing.T) {
	tests := []struct {
		mentions int
		events   int
		want     ActivityLevel
	}{
		{0, 0, ActivityLow},
		{2, 1, ActivityLow},
		{3, 0, ActivityMedium},
		{0, 2, ActivityMedium},
		{6, 0, ActivityHigh},
		{0, 5, ActivityHigh},
		{10, 10, ActivityHigh},
	}

	for _, tt := range tests {
		if got := ActivityLevelFor(tt.mentions, tt.events); got != tt.want {
			t.Errorf("ActivityLevelFor(%d, %d) = %s, want %s", tt.mentions, tt.events, got, tt.want)
		}
	}
}

func TestFindGeographicSignals(t *testing.T) {
	t.Run("panama via override map", func(t *testing.T) {
		got := FindGeographicSignals("Panama")
		if len(got.Hotspots) != 1 || got.Hotspots[0].Name != "Panama Canal" {
			t.Errorf("Hotspots = %+v, want only Panama Canal", got.Hotspots)
		}
		if len(got.ConflictZones) != 0 {
			t.Errorf("ConflictZones = %v, want none", got.ConflictZones)
		}
	})

	t.Run("ukraine conflict and infrastructure", func(t *testing.T) {
		got := FindGeographicSignals("Ukraine")
		if len(got.ConflictZones) != 1 || got.ConflictZones[0] != "Ukraine" {
			t.Errorf("ConflictZones = %v, want [Ukraine]", got.ConflictZones)
		}
		names := make(map[string]bool)
		for _, i := range got.Infrastructure {
			names[i.Name] = true
		}
		for _, want := range []string{"Zaporizhzhia", "Chernobyl", "Sevastopol"} {
			if !names[want] {
				t.Errorf("Infrastructure missing %s: %+v", want, got.Infrastructure)
			}
		}
	})

	t.Run("france hotspot and cable hub", func(t *testing.T) {
		got := FindGeographicSignals("France")
		foundChannel := false
		for _, h := range got.Hotspots {
			if h.Name == "English Channel" {
				foundChannel = true
			}
		}
		if !foundChannel {
			t.Errorf("Hotspots = %+v, want English Channel included", got.Hotspots)
		}
		foundMarseille := false
		for _, i := range got.Infrastructure {
			if i.Name == "Marseille" && i.Kind == gazetteer.InfraCable {
				foundMarseille = true
			}
		}
		if !foundMarseille {
			t.Errorf("Infrastructure = %+v, want Marseille cable hub", got.Infrastructure)
		}
	})
}

func TestBuildAggregatesCountryPicture(t *testing.T) {
	b := testBuilder(t)
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	items := []feeds.Item{
		item("France announces military exercise", now.Add(-1*time.Hour)),
		item("Storm disrupts cable landing near France", now.Add(-3*time.Hour)),
		item("France hosts trade summit", now.Add(-5*time.Hour)),
		// Stale, outside the 24h window.
		item("France wins old headline", now.Add(-30*time.Hour)),
		// Unrelated.
		item("Germany updates budget plan", now.Add(-2*time.Hour)),
	}

	got := b.Build("France", items, now)

	if got.Country != "France" {
		t.Errorf("Country = %q, want France", got.Country)
	}
	if got.RecentActivity.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", got.RecentActivity.TotalEvents)
	}
	if got.RecentActivity.ByType.Conflict != 1 {
		t.Errorf("ByType.Conflict = %d, want 1", got.RecentActivity.ByType.Conflict)
	}
	if got.RecentActivity.ByType.Infrastructure != 1 {
		t.Errorf("ByType.Infrastructure = %d, want 1", got.RecentActivity.ByType.Infrastructure)
	}
	if got.RecentActivity.ByType.News != 1 {
		t.Errorf("ByType.News = %d, want 1", got.RecentActivity.ByType.News)
	}
	if len(got.RelevantEvents) != 3 {
		t.Fatalf("RelevantEvents = %d, want 3", len(got.RelevantEvents))
	}
	if got.RelevantEvents[0].Title != "France announces military exercise" {
		t.Errorf("events not newest first: %q", got.RelevantEvents[0].Title)
	}
	// 4 mentions total (stale items still count as mentions), 3 recent events.
	if got.ActivityLevel != ActivityMedium {
		t.Errorf("ActivityLevel = %s, want medium", got.ActivityLevel)
	}
	// Paris sits near 2.4E, offset 0.
	if got.LocalTime != "12:00 PM" {
		t.Errorf("LocalTime = %q, want 12:00 PM", got.LocalTime)
	}
}

func TestBuildAcceptsVariantName(t *testing.T) {
	b := testBuilder(t)
	now := time.Now()

	got := b.Build("french", nil, now)
	if got.Country != "France" {
		t.Errorf("Country = %q, want canonical France", got.Country)
	}
}

func TestBuildUnknownCountryFallsBack(t *testing.T) {
	b := testBuilder(t)
	now := time.Date(2026, 1, 2, 9, 15, 0, 0, time.UTC)

	got := b.Build("Atlantis", nil, now)

	if got.Country != "Atlantis" {
		t.Errorf("Country = %q, want Atlantis", got.Country)
	}
	if got.LocalTime != "9:15 AM" {
		t.Errorf("LocalTime = %q, want Greenwich fallback 9:15 AM", got.LocalTime)
	}
	if len(got.RelevantEvents) != 0 || got.ActivityLevel != ActivityLow {
		t.Errorf("unknown country should have no activity: %+v", got)
	}
}

func TestRelevantEventsDedupAndCap(t *testing.T) {
	b := testBuilder(t)
	now := time.Now()

	var items []feeds.Item
	// Duplicate title differing only in punctuation.
	items = append(items, item("France: markets rally", now.Add(-1*time.Hour)))
	items = append(items, item("France markets rally!", now.Add(-2*time.Hour)))
	for i := 0; i < 8; i++ {
		items = append(items, item(fmt.Sprintf("France update number %d", i), now.Add(-time.Duration(i+3)*time.Hour)))
	}

	got := b.Build("France", items, now)

	if len(got.RelevantEvents) != maxRelevantEvents {
		t.Fatalf("RelevantEvents = %d, want %d", len(got.RelevantEvents), maxRelevantEvents)
	}
	titles := make(map[string]bool)
	for _, e := range got.RelevantEvents {
		norm := feeds.NormalizeTitle(e.Title)
		if titles[norm] {
			t.Errorf("duplicate title survived dedup: %q", e.Title)
		}
		titles[norm] = true
	}
}
