package sector

import (
	"sort"
	"time"

	"github.com/avaldez/geopulse/internal/feeds"
)

// Config tunes the scoring engine.
type Config struct {
	TimeWindowHours   int
	ImpactMultipliers map[Impact]float64
	RecencyDecay      DecayConfig
	MaxTopNews        int
}

// DecayConfig holds the recency decay factors by age bracket.
type DecayConfig struct {
	Recent float64 // < 2h
	Medium float64 // 2-6h
	Old    float64 // 6h to window edge
}

// DefaultConfig returns the stock scoring configuration.
func DefaultConfig() Config {
	return Config{
		TimeWindowHours: 12,
		ImpactMultipliers: map[Impact]float64{
			ImpactLow:    1,
			ImpactMedium: 2,
			ImpactHigh:   3,
		},
		RecencyDecay: DecayConfig{
			Recent: 1.0,
			Medium: 0.8,
			Old:    0.6,
		},
		MaxTopNews: 10,
	}
}

// recencyDecay returns the decay factor for an item's age, or 0 when
// the item falls outside the scoring window.
func recencyDecay(pubDate time.Time, cfg Config, now time.Time) float64 {
	age := now.Sub(pubDate)
	switch {
	case age < 2*time.Hour:
		return cfg.RecencyDecay.Recent
	case age < 6*time.Hour:
		return cfg.RecencyDecay.Medium
	case age < time.Duration(cfg.TimeWindowHours)*time.Hour:
		return cfg.RecencyDecay.Old
	default:
		return 0
	}
}

func sentimentDirection(s Sentiment) float64 {
	switch s {
	case Positive:
		return 1
	case Negative:
		return -1
	default:
		return 0
	}
}

// weightedImpact is the signed-free magnitude of one classification:
// impact multiplier times decay times confidence.
func weightedImpact(c Classification, cfg Config, now time.Time) float64 {
	decay := recencyDecay(c.Item.PubDate, cfg, now)
	if decay == 0 {
		return 0
	}
	return cfg.ImpactMultipliers[c.Impact] * decay * c.Confidence
}

// selectTopNews picks the most relevant unique items for a sector,
// ordered by impact, then decay, then confidence.
func selectTopNews(classifications []Classification, cfg Config, now time.Time) []feeds.Item {
	impactRank := map[Impact]int{ImpactHigh: 3, ImpactMedium: 2, ImpactLow: 1}

	sorted := make([]Classification, len(classifications))
	copy(sorted, classifications)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if impactRank[a.Impact] != impactRank[b.Impact] {
			return impactRank[a.Impact] > impactRank[b.Impact]
		}
		da := recencyDecay(a.Item.PubDate, cfg, now)
		db := recencyDecay(b.Item.PubDate, cfg, now)
		if da != db {
			return da > db
		}
		return a.Confidence > b.Confidence
	})

	seen := make(map[string]struct{})
	var top []feeds.Item
	for _, c := range sorted {
		if _, ok := seen[c.Item.ID]; ok {
			continue
		}
		seen[c.Item.ID] = struct{}{}
		top = append(top, c.Item)
		if len(top) >= cfg.MaxTopNews {
			break
		}
	}
	return top
}

// CalculateSectorScore reduces the classifications belonging to one
// sector into its narrative score. Items older than the scoring window
// are excluded entirely; an empty pool yields the neutral zero score.
// The score is rawScore over the maximum possible score (every item
// positive, high impact, full decay and confidence), scaled to -100..+100.
func CalculateSectorScore(sector Sector, classifications []Classification, cfg Config, now time.Time) Score {
	cutoff := now.Add(-time.Duration(cfg.TimeWindowHours) * time.Hour)

	var pool []Classification
	for _, c := range classifications {
		if c.PrimarySector != sector {
			continue
		}
		if c.Item.PubDate.Before(cutoff) {
			continue
		}
		pool = append(pool, c)
	}

	if len(pool) == 0 {
		return Score{Sector: sector, LastUpdate: now}
	}

	score := Score{
		Sector:     sector,
		NewsCount:  len(pool),
		LastUpdate: now,
	}

	rawScore := 0.0
	for _, c := range pool {
		switch c.Sentiment {
		case Positive:
			score.PositiveCount++
		case Negative:
			score.NegativeCount++
		default:
			score.NeutralCount++
		}
		rawScore += weightedImpact(c, cfg, now) * sentimentDirection(c.Sentiment)
	}

	maxPossible := float64(len(pool)) * cfg.ImpactMultipliers[ImpactHigh] * cfg.RecencyDecay.Recent
	if maxPossible > 0 {
		normalized := rawScore / maxPossible * 100
		if normalized > 100 {
			normalized = 100
		}
		if normalized < -100 {
			normalized = -100
		}
		score.Score = normalized
	}

	score.TopNews = selectTopNews(pool, cfg, now)
	return score
}

// CalculateAll scores every sector against the full classification pool.
func CalculateAll(classifications []Classification, cfg Config, now time.Time) map[Sector]Score {
	scores := make(map[Sector]Score, len(Sectors))
	for _, s := range Sectors {
		scores[s] = CalculateSectorScore(s, classifications, cfg, now)
	}
	return scores
}
