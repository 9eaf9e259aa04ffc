// Package sector classifies news items into market sectors with a
// sentiment and impact level, and reduces the classified pool into a
// decaying, time-windowed, normalized per-sector score.
package sector

import (
	"time"

	"github.com/avaldez/geopulse/internal/feeds"
)

// Sector is one of the 8 fixed market categories.
type Sector string

const (
	Technology Sector = "Technology"
	Finance    Sector = "Finance"
	Healthcare Sector = "Healthcare"
	Energy     Sector = "Energy"
	Consumer   Sector = "Consumer"
	Industrial Sector = "Industrial"
	Materials  Sector = "Materials"
	Utilities  Sector = "Utilities"
)

// Sectors lists all sectors in display order.
var Sectors = []Sector{
	Technology, Finance, Healthcare, Energy,
	Consumer, Industrial, Materials, Utilities,
}

// Sentiment is the detected direction of a news item.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Impact grades how hard a news item is expected to move a sector.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Classification ties one news item to one sector it affects. An item
// may yield several classifications (multi-sector membership is
// intentional) or none; sentiment and impact are computed once per item
// and shared across its classifications, confidence is per sector.
type Classification struct {
	PrimarySector Sector
	Subsector     string // reserved, unused
	Sentiment     Sentiment
	Impact        Impact
	Confidence    float64 // 0.3-1.0
	Item          feeds.Item
}

// Score is the aggregated narrative score for one sector. It is
// recomputed wholesale whenever the item pool changes; callers treat it
// as a full replacement, never a diff.
type Score struct {
	Sector        Sector
	Score         float64 // normalized, -100..+100
	NewsCount     int
	PositiveCount int
	NegativeCount int
	NeutralCount  int
	TopNews       []feeds.Item
	LastUpdate    time.Time
}

// sectorKeywords drives sector classification. Matching is substring
// containment over normalized text, deliberately looser than country
// matching since keywords are often multi-word phrases.
var sectorKeywords = map[Sector][]string{
	Technology: {
		"tech", "technology", "software", "semiconductor", "chip", "ai",
		"artificial intelligence", "cloud", "computing", "digital", "internet",
		"cyber", "data", "algorithm", "platform", "app", "device", "hardware",
		"startup", "tech company", "innovation", "digital transformation",
	},
	Finance: {
		"bank", "financial", "finance", "market", "trading", "stock", "currency",
		"fed", "federal reserve", "central bank", "economy", "inflation",
		"interest rate", "bond", "investment", "investor", "marketplace",
		"financial market", "stock market", "banking", "monetary", "fiscal",
	},
	Healthcare: {
		"health", "healthcare", "medical", "pharma", "pharmaceutical", "drug",
		"hospital", "clinic", "treatment", "medicine", "patient", "disease",
		"healthcare sector", "medical device", "biotech", "biotechnology",
		"clinical trial", "health system", "healthcare provider",
	},
	Energy: {
		"oil", "gas", "energy", "renewable", "solar", "wind", "nuclear", "power",
		"electricity", "fuel", "petroleum", "crude", "energy sector", "drilling",
		"refinery", "energy market", "energy production", "energy consumption",
	},
	Consumer: {
		"retail", "consumer", "shopping", "brand", "store", "sales",
		"consumer goods", "marketplace", "e-commerce", "retailer",
		"consumer spending", "retail sector", "consumer market", "shopping mall",
	},
	Industrial: {
		"manufacturing", "industrial", "factory", "production", "manufacturing sector",
		"industrial sector", "plant", "manufacturing plant", "industrial production",
		"factory output", "manufacturing output",
	},
	Materials: {
		"steel", "copper", "commodity", "mining", "metal", "raw materials",
		"commodities", "mineral", "mining sector", "metals market", "commodity market",
		"steel production", "copper price",
	},
	Utilities: {
		"utility", "utilities", "power", "electricity", "grid", "energy grid",
		"public utility", "power plant", "electric grid", "utility sector",
		"power generation", "electricity generation",
	},
}

// positiveKeywords signal upside sentiment.
var positiveKeywords = []string{
	"growth", "surge", "gain", "rise", "boost", "breakthrough", "success",
	"profit", "increase", "up", "positive", "expansion", "recovery",
	"improvement", "advance", "progress", "soar", "jump", "climb", "rally",
	"boom", "thrive", "flourish", "prosper", "excel", "outperform",
}

// negativeKeywords signal downside sentiment.
var negativeKeywords = []string{
	"decline", "fall", "crash", "crisis", "loss", "breach", "attack", "failure",
	"decrease", "down", "negative", "recession", "collapse", "downturn",
	"drop", "plunge", "slump", "dive", "tumble", "sink", "weaken", "struggle",
	"fail", "breakdown", "disruption", "shortage", "scarcity",
}

// highImpactKeywords bump an item straight to high impact.
var highImpactKeywords = []string{
	"crisis", "crash", "breakthrough", "emergency", "critical", "urgent",
	"major", "significant", "massive", "huge", "enormous", "devastating",
	"catastrophic", "revolutionary", "transformative", "game-changing",
}
