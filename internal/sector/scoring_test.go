package sector

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func classification(sector Sector, sentiment Sentiment, impact Impact, conf float64, pubDate time.Time) Classification {
	title := fmt.Sprintf("%s %s %s %v", sector, sentiment, impact, pubDate.UnixNano())
	return Classification{
		PrimarySector: sector,
		Sentiment:     sentiment,
		Impact:        impact,
		Confidence:    conf,
		Item:          newsItem(title, "", pubDate),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateSectorScoreSinglePositiveHigh(t *testing.T) {
	now := time.Now()
	cls := []Classification{
		classification(Energy, Positive, ImpactHigh, 1.0, now),
	}

	got := CalculateSectorScore(Energy, cls, DefaultConfig(), now)

	// raw = 3 * 1.0 * 1.0, max = 1 * 3 * 1.0, so the score pegs at 100.
	if !almostEqual(got.Score, 100) {
		t.Errorf("Score = %v, want 100", got.Score)
	}
	if got.NewsCount != 1 || got.PositiveCount != 1 {
		t.Errorf("counts = %+v, want 1 news, 1 positive", got)
	}
	if len(got.TopNews) != 1 {
		t.Errorf("TopNews = %d items, want 1", len(got.TopNews))
	}
}

func TestCalculateSectorScoreMixedDecay(t *testing.T) {
	now := time.Now()
	cls := []Classification{
		// 1h old: decay 1.0, weighted 2*1.0*0.5 = 1.0, positive
		classification(Energy, Positive, ImpactMedium, 0.5, now.Add(-1*time.Hour)),
		// 5h old: decay 0.8, weighted 1*0.8*0.5 = 0.4, negative
		classification(Energy, Negative, ImpactLow, 0.5, now.Add(-5*time.Hour)),
	}

	got := CalculateSectorScore(Energy, cls, DefaultConfig(), now)

	// raw = 1.0 - 0.4 = 0.6, max = 2 * 3 * 1.0 = 6, normalized = 10.
	if !almostEqual(got.Score, 10) {
		t.Errorf("Score = %v, want 10", got.Score)
	}
	if got.NewsCount != 2 || got.PositiveCount != 1 || got.NegativeCount != 1 {
		t.Errorf("counts wrong: %+v", got)
	}
}

func TestCalculateSectorScoreWindowExclusion(t *testing.T) {
	now := time.Now()
	cls := []Classification{
		classification(Energy, Negative, ImpactHigh, 1.0, now.Add(-13*time.Hour)),
		classification(Energy, Positive, ImpactHigh, 1.0, now.Add(-1*time.Hour)),
	}

	got := CalculateSectorScore(Energy, cls, DefaultConfig(), now)

	if got.NewsCount != 1 {
		t.Fatalf("NewsCount = %d, want 1 (stale item excluded)", got.NewsCount)
	}
	if got.NegativeCount != 0 {
		t.Errorf("NegativeCount = %d, stale negative should not count", got.NegativeCount)
	}
	if !almostEqual(got.Score, 100) {
		t.Errorf("Score = %v, want 100", got.Score)
	}
}

func TestCalculateSectorScoreNeutralBaseline(t *testing.T) {
	now := time.Now()

	got := CalculateSectorScore(Energy, nil, DefaultConfig(), now)

	if got.Score != 0 || got.NewsCount != 0 || len(got.TopNews) != 0 {
		t.Errorf("empty pool should yield neutral zero score, got %+v", got)
	}
	if got.Sector != Energy {
		t.Errorf("Sector = %s, want Energy", got.Sector)
	}
}

func TestCalculateSectorScoreNeutralItemsScoreZero(t *testing.T) {
	now := time.Now()
	cls := []Classification{
		classification(Finance, Neutral, ImpactHigh, 1.0, now),
		classification(Finance, Neutral, ImpactMedium, 0.5, now.Add(-3*time.Hour)),
	}

	got := CalculateSectorScore(Finance, cls, DefaultConfig(), now)

	if !almostEqual(got.Score, 0) {
		t.Errorf("Score = %v, neutral items must not move the score", got.Score)
	}
	if got.NewsCount != 2 || got.NeutralCount != 2 {
		t.Errorf("counts wrong: %+v", got)
	}
}

func TestCalculateSectorScoreBounded(t *testing.T) {
	now := time.Now()

	var cls []Classification
	for i := 0; i < 50; i++ {
		cls = append(cls, classification(Materials, Negative, ImpactHigh, 1.0, now))
	}

	got := CalculateSectorScore(Materials, cls, DefaultConfig(), now)
	if got.Score < -100 || got.Score > 100 {
		t.Errorf("Score = %v, out of [-100, 100]", got.Score)
	}
	if !almostEqual(got.Score, -100) {
		t.Errorf("Score = %v, want -100 for uniformly negative pool", got.Score)
	}
}

func TestCalculateSectorScoreIgnoresOtherSectors(t *testing.T) {
	now := time.Now()
	cls := []Classification{
		classification(Energy, Positive, ImpactHigh, 1.0, now),
		classification(Finance, Negative, ImpactHigh, 1.0, now),
	}

	got := CalculateSectorScore(Energy, cls, DefaultConfig(), now)
	if got.NewsCount != 1 || got.NegativeCount != 0 {
		t.Errorf("other sectors leaked into the pool: %+v", got)
	}
}

func TestSelectTopNewsOrderingAndDedup(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()

	lowOld := classification(Technology, Neutral, ImpactLow, 0.9, now.Add(-8*time.Hour))
	highFresh := classification(Technology, Neutral, ImpactHigh, 0.3, now)
	medFresh := classification(Technology, Neutral, ImpactMedium, 0.5, now)
	duplicate := highFresh // same underlying item

	top := selectTopNews([]Classification{lowOld, duplicate, medFresh, highFresh}, cfg, now)

	if len(top) != 3 {
		t.Fatalf("len(top) = %d, want 3 (duplicate collapsed)", len(top))
	}
	if top[0].ID != highFresh.Item.ID {
		t.Errorf("top[0] = %s, want the high-impact item first", top[0].Title)
	}
	if top[1].ID != medFresh.Item.ID {
		t.Errorf("top[1] = %s, want the medium-impact item second", top[1].Title)
	}
}

func TestSelectTopNewsCap(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()

	var cls []Classification
	for i := 0; i < 15; i++ {
		cls = append(cls, classification(Technology, Neutral, ImpactLow, 0.3, now.Add(-time.Duration(i)*time.Minute)))
	}

	top := selectTopNews(cls, cfg, now)
	if len(top) != cfg.MaxTopNews {
		t.Errorf("len(top) = %d, want %d", len(top), cfg.MaxTopNews)
	}
}

func TestCalculateAllCoversEverySector(t *testing.T) {
	now := time.Now()
	scores := CalculateAll(nil, DefaultConfig(), now)

	if len(scores) != len(Sectors) {
		t.Fatalf("len(scores) = %d, want %d", len(scores), len(Sectors))
	}
	for _, s := range Sectors {
		if _, ok := scores[s]; !ok {
			t.Errorf("missing score for sector %s", s)
		}
	}
}
