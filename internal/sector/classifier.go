package sector

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/avaldez/geopulse/internal/feeds"
)

// normalizeText lowercases and replaces punctuation with spaces so that
// keyword containment checks don't trip on commas or quotes.
func normalizeText(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lower)
}

func containsAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// confidence scales the match ratio into 0.3-1.0. A single hit out of
// many keywords still earns the floor so thin matches aren't dropped.
func confidence(matches, total int) float64 {
	ratio := float64(matches) / float64(total)
	c := ratio * 2
	if c < 0.3 {
		c = 0.3
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}

type sectorMatch struct {
	sector     Sector
	confidence float64
}

// matchSectors returns every sector whose keywords appear in the text,
// highest confidence first.
func matchSectors(normalized string) []sectorMatch {
	var matches []sectorMatch
	for _, s := range Sectors {
		keywords := sectorKeywords[s]
		count := 0
		for _, kw := range keywords {
			if strings.Contains(normalized, kw) {
				count++
			}
		}
		if count > 0 {
			matches = append(matches, sectorMatch{sector: s, confidence: confidence(count, len(keywords))})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].confidence > matches[j].confidence
	})
	return matches
}

// classifySentiment is negative-dominant: an item carrying both positive
// and negative keywords reads as negative.
func classifySentiment(normalized string) Sentiment {
	if containsAny(normalized, negativeKeywords) {
		return Negative
	}
	if containsAny(normalized, positiveKeywords) {
		return Positive
	}
	return Neutral
}

// classifyImpact grades an item by alert status, intensity keywords and
// age at the time of classification.
func classifyImpact(item feeds.Item, normalized string, now time.Time) Impact {
	if item.Alert {
		return ImpactHigh
	}
	if containsAny(normalized, highImpactKeywords) {
		return ImpactHigh
	}
	age := now.Sub(item.PubDate)
	if age < 2*time.Hour {
		return ImpactMedium
	}
	if age < 6*time.Hour {
		return ImpactMedium
	}
	return ImpactLow
}

// ClassifyItem classifies one news item against all sectors. It returns
// one Classification per matching sector, ordered by confidence, or nil
// when no sector applies. now fixes the reference point for impact
// grading.
func ClassifyItem(item feeds.Item, now time.Time) []Classification {
	normalized := normalizeText(item.SearchText())

	matches := matchSectors(normalized)
	if len(matches) == 0 {
		return nil
	}

	sentiment := classifySentiment(normalized)
	impact := classifyImpact(item, normalized, now)

	result := make([]Classification, 0, len(matches))
	for _, m := range matches {
		result = append(result, Classification{
			PrimarySector: m.sector,
			Sentiment:     sentiment,
			Impact:        impact,
			Confidence:    m.confidence,
			Item:          item,
		})
	}
	return result
}

// ClassifyItems classifies a batch of items into a flat classification
// list.
func ClassifyItems(items []feeds.Item, now time.Time) []Classification {
	var all []Classification
	for _, item := range items {
		all = append(all, ClassifyItem(item, now)...)
	}
	return all
}
