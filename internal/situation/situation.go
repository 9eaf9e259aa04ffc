// Package situation aggregates the current picture for one country:
// approximate local time, recent mention activity, relevant events, and
// fixed geographic signals (hotspots, conflict zones, infrastructure).
package situation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/avaldez/geopulse/internal/feeds"
	"github.com/avaldez/geopulse/internal/gazetteer"
	"github.com/avaldez/geopulse/internal/mentions"
)

// ActivityLevel grades how busy a country's news picture is.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// EventType buckets a relevant event by its content.
type EventType string

const (
	EventNews           EventType = "news"
	EventConflict       EventType = "conflict"
	EventInfrastructure EventType = "infrastructure"
	EventAlert          EventType = "alert"
)

// RelevantEvent is one recent news event tied to the country.
type RelevantEvent struct {
	Type      EventType
	Title     string
	Timestamp time.Time
	TimeAgo   string
	Source    string
}

// HotspotSignal is a hotspot touching the country.
type HotspotSignal struct {
	Name  string
	Level gazetteer.HotspotLevel
}

// InfraSignal is a strategic installation in or tied to the country.
type InfraSignal struct {
	Name string
	Kind gazetteer.InfrastructureKind
}

// GeographicSignals are the fixed-geography facts about a country,
// independent of the current news pool.
type GeographicSignals struct {
	Hotspots       []HotspotSignal
	ConflictZones  []string
	Infrastructure []InfraSignal
}

// ActivityByType breaks recent activity down by event type. Alerts land
// in Other.
type ActivityByType struct {
	News           int
	Conflict       int
	Infrastructure int
	Other          int
}

// Activity summarizes the country's recent event volume.
type Activity struct {
	TotalEvents int
	WindowHours int
	ByType      ActivityByType
}

// Situation is the full aggregated picture for one country.
type Situation struct {
	Country        string
	LocalTime      string
	ActivityLevel  ActivityLevel
	RecentActivity Activity
	RelevantEvents []RelevantEvent
	Geographic     GeographicSignals
}

const (
	lookbackHours     = 24
	maxRelevantEvents = 5
)

var conflictKeywords = []string{"conflict", "war", "attack", "strike", "military", "battle", "fighting"}

var infrastructureKeywords = []string{"infrastructure", "cable", "nuclear", "base", "facility", "power plant"}

// Builder assembles country situations from the live item pool and the
// gazetteer's fixed geography.
type Builder struct {
	extractor *mentions.Extractor
}

// NewBuilder creates a situation builder over the given extractor.
func NewBuilder(extractor *mentions.Extractor) *Builder {
	return &Builder{extractor: extractor}
}

// Build assembles the situation for a country at the given instant. The
// country may be a canonical name or any gazetteer variant. Unknown
// countries still get a situation, with Greenwich local time and no
// mention-derived data.
func (b *Builder) Build(country string, items []feeds.Item, now time.Time) Situation {
	lon := 0.0
	name := country
	if entry, ok := b.extractor.Index().Lookup(country); ok {
		lon = entry.Lon
		name = entry.Name
	}

	activity := b.recentActivity(items, name, now)
	mentionCount := 0
	for _, m := range b.extractor.Extract(items) {
		if strings.EqualFold(m.Name, name) {
			mentionCount = m.MentionCount
			break
		}
	}

	return Situation{
		Country:        name,
		LocalTime:      LocalTimeAt(lon, now),
		ActivityLevel:  ActivityLevelFor(mentionCount, activity.TotalEvents),
		RecentActivity: activity,
		RelevantEvents: b.relevantEvents(items, name, now),
		Geographic:     FindGeographicSignals(name),
	}
}

// ActivityLevelFor grades activity from mention volume and recent event
// count. Either signal alone can raise the level.
func ActivityLevelFor(mentionCount, recentEvents int) ActivityLevel {
	if mentionCount >= 6 || recentEvents >= 5 {
		return ActivityHigh
	}
	if mentionCount >= 3 || recentEvents >= 2 {
		return ActivityMedium
	}
	return ActivityLow
}

// countryPatterns builds the loose word-boundary matchers for a country
// name: the name itself plus its space-collapsed and dashed forms.
func countryPatterns(name string) []*regexp.Regexp {
	normalized := strings.ToLower(strings.TrimSpace(name))
	variants := []string{
		normalized,
		strings.ReplaceAll(normalized, " ", ""),
		strings.ReplaceAll(normalized, " ", "-"),
	}

	seen := make(map[string]struct{}, len(variants))
	patterns := make([]*regexp.Regexp, 0, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(v)+`\b`))
	}
	return patterns
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// recentItems filters the pool to items naming the country within the
// lookback window.
func recentItems(items []feeds.Item, name string, now time.Time) []feeds.Item {
	patterns := countryPatterns(name)
	cutoff := now.Add(-lookbackHours * time.Hour)

	var result []feeds.Item
	for _, item := range items {
		if item.PubDate.Before(cutoff) {
			continue
		}
		if matchesAny(strings.ToLower(item.SearchText()), patterns) {
			result = append(result, item)
		}
	}
	return result
}

func (b *Builder) recentActivity(items []feeds.Item, name string, now time.Time) Activity {
	recent := recentItems(items, name, now)

	activity := Activity{
		TotalEvents: len(recent),
		WindowHours: lookbackHours,
	}
	for _, item := range recent {
		switch EventTypeOf(item) {
		case EventNews:
			activity.ByType.News++
		case EventConflict:
			activity.ByType.Conflict++
		case EventInfrastructure:
			activity.ByType.Infrastructure++
		default:
			activity.ByType.Other++
		}
	}
	return activity
}

// relevantEvents returns up to 5 recent events naming the country,
// newest first, with near-duplicate titles collapsed. The country must
// register in the extractor's aggregate pass, otherwise no events are
// reported.
func (b *Builder) relevantEvents(items []feeds.Item, name string, now time.Time) []RelevantEvent {
	known := false
	for _, m := range b.extractor.Extract(items) {
		if strings.EqualFold(m.Name, name) {
			known = true
			break
		}
	}
	if !known {
		return nil
	}

	recent := recentItems(items, name, now)
	feeds.SortByDate(recent)
	recent = feeds.Dedupe(recent)

	if len(recent) > maxRelevantEvents {
		recent = recent[:maxRelevantEvents]
	}

	events := make([]RelevantEvent, 0, len(recent))
	for _, item := range recent {
		events = append(events, RelevantEvent{
			Type:      EventTypeOf(item),
			Title:     item.Title,
			Timestamp: item.PubDate,
			TimeAgo:   TimeAgo(item.PubDate, now),
			Source:    item.Source,
		})
	}
	return events
}

// EventTypeOf buckets an item. Alerts win outright; conflict keywords
// beat infrastructure keywords.
func EventTypeOf(item feeds.Item) EventType {
	if item.Alert {
		return EventAlert
	}
	text := strings.ToLower(item.SearchText())
	for _, kw := range conflictKeywords {
		if strings.Contains(text, kw) {
			return EventConflict
		}
	}
	for _, kw := range infrastructureKeywords {
		if strings.Contains(text, kw) {
			return EventInfrastructure
		}
	}
	return EventNews
}

// FindGeographicSignals collects the fixed geography tied to a country.
// Known override maps take precedence; otherwise a hotspot or
// installation counts when its description names the country, and a
// conflict zone when its name and the country's contain each other.
func FindGeographicSignals(country string) GeographicSignals {
	normalized := strings.ToLower(strings.TrimSpace(country))

	var signals GeographicSignals
	for _, h := range gazetteer.Hotspots {
		if geoMatch(gazetteer.HotspotCountries, h.Name, h.Desc, normalized) {
			signals.Hotspots = append(signals.Hotspots, HotspotSignal{Name: h.Name, Level: h.Level})
		}
	}
	for _, z := range gazetteer.ConflictZones {
		zone := strings.ToLower(z.Name)
		if zone == normalized || strings.Contains(zone, normalized) || strings.Contains(normalized, zone) {
			signals.ConflictZones = append(signals.ConflictZones, z.Name)
		}
	}
	for _, infra := range gazetteer.Infrastructures {
		if geoMatch(gazetteer.InfrastructureCountries, infra.Name, infra.Desc, normalized) {
			signals.Infrastructure = append(signals.Infrastructure, InfraSignal{Name: infra.Name, Kind: infra.Kind})
		}
	}
	return signals
}

func geoMatch(overrides map[string][]string, name, desc, normalizedCountry string) bool {
	if mapped, ok := overrides[name]; ok {
		for _, c := range mapped {
			if strings.ToLower(c) == normalizedCountry {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(desc), normalizedCountry)
}

// LocalTimeAt approximates a location's wall clock from its longitude,
// one hour per 15 degrees, formatted as 12-hour AM/PM.
func LocalTimeAt(lon float64, now time.Time) string {
	offset := int(math.Floor(lon/15 + 0.5))

	utc := now.UTC()
	hours := (utc.Hour() + offset) % 24
	if hours < 0 {
		hours += 24
	}

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, utc.Minute(), period)
}

// TimeAgo formats the age of a timestamp as a compact relative string.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
