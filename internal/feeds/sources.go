package feeds

// FeedConfig describes a single RSS source.
// Weight: 1.0 = normal, >1 = more important, <1 = less important.
// Primary feeds are listed first per category so their items win
// title-level deduplication.
type FeedConfig struct {
	Name     string
	URL      string
	Category Category
	Primary  bool
	Alert    bool // items from this source carry the alert flag
	Weight   float64
}

// DefaultFeeds is the curated list of RSS sources, organized by category
// for transparency - you see exactly what you're subscribed to.
var DefaultFeeds = []FeedConfig{
	// ============================================
	// WORLD
	// ============================================
	{Name: "Google News World", URL: "https://news.google.com/rss/search?q=world+news&hl=en-US&gl=US&ceid=US:en", Category: CategoryWorld, Primary: true, Weight: 1.0},
	{Name: "BBC World", URL: "https://feeds.bbci.co.uk/news/world/rss.xml", Category: CategoryWorld, Weight: 1.3},
	{Name: "NPR News", URL: "https://feeds.npr.org/1001/rss.xml", Category: CategoryWorld, Weight: 1.2},
	{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss", Category: CategoryWorld, Weight: 1.2},
	{Name: "Reuters", URL: "https://www.reutersagency.com/feed/?taxonomy=best-sectors&post_type=best", Category: CategoryWorld, Weight: 1.5},
	{Name: "The Diplomat", URL: "https://thediplomat.com/feed/", Category: CategoryWorld, Weight: 1.0},
	{Name: "Al-Monitor", URL: "https://www.al-monitor.com/rss", Category: CategoryWorld, Weight: 1.0},

	// ============================================
	// GEOPOLITICAL
	// ============================================
	{Name: "Google News Geopolitics", URL: "https://news.google.com/rss/search?q=geopolitics&hl=en-US&gl=US&ceid=US:en", Category: CategoryGeopolitical, Primary: true, Weight: 1.0},
	{Name: "CSIS", URL: "https://www.csis.org/analysis/feed", Category: CategoryGeopolitical, Weight: 1.1},
	{Name: "Brookings", URL: "https://www.brookings.edu/feed/", Category: CategoryGeopolitical, Weight: 1.1},
	{Name: "CFR", URL: "https://www.cfr.org/rss.xml", Category: CategoryGeopolitical, Weight: 1.1},
	{Name: "Defense One", URL: "https://www.defenseone.com/rss/all/", Category: CategoryGeopolitical, Weight: 1.0},
	{Name: "War on the Rocks", URL: "https://warontherocks.com/feed/", Category: CategoryGeopolitical, Weight: 1.0},
	{Name: "Breaking Defense", URL: "https://breakingdefense.com/feed/", Category: CategoryGeopolitical, Weight: 1.0},
	{Name: "The War Zone", URL: "https://www.thedrive.com/the-war-zone/feed", Category: CategoryGeopolitical, Weight: 1.0},
	{Name: "Bellingcat", URL: "https://www.bellingcat.com/feed/", Category: CategoryGeopolitical, Weight: 1.2},
	{Name: "DoD Releases", URL: "https://www.defense.gov/DesktopModules/ArticleCS/RSS.ashx?max=10&ContentType=1&Site=945", Category: CategoryGeopolitical, Weight: 0.9},
	{Name: "White House", URL: "https://www.whitehouse.gov/news/feed/", Category: CategoryGeopolitical, Weight: 0.9},
	{Name: "State Dept", URL: "https://www.state.gov/rss-feed/press-releases/feed/", Category: CategoryGeopolitical, Weight: 0.9},

	// ============================================
	// TECHNOLOGY
	// ============================================
	{Name: "Google News Tech", URL: "https://news.google.com/rss/search?q=technology+news&hl=en-US&gl=US&ceid=US:en", Category: CategoryTechnology, Primary: true, Weight: 1.0},
	{Name: "Hacker News", URL: "https://hnrss.org/frontpage", Category: CategoryTechnology, Weight: 1.2},
	{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/technology-lab", Category: CategoryTechnology, Weight: 1.0},
	{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Category: CategoryTechnology, Weight: 1.0},
	{Name: "MIT Tech Review", URL: "https://www.technologyreview.com/feed/", Category: CategoryTechnology, Weight: 1.1},
	{Name: "CISA Alerts", URL: "https://www.cisa.gov/uscert/ncas/alerts.xml", Category: CategoryTechnology, Alert: true, Weight: 1.4},
	{Name: "Krebs on Security", URL: "https://krebsonsecurity.com/feed/", Category: CategoryTechnology, Weight: 1.1},

	// ============================================
	// AI
	// ============================================
	{Name: "Google News AI", URL: "https://news.google.com/rss/search?q=artificial+intelligence&hl=en-US&gl=US&ceid=US:en", Category: CategoryAI, Primary: true, Weight: 1.0},
	{Name: "arXiv cs.AI", URL: "https://rss.arxiv.org/rss/cs.AI", Category: CategoryAI, Weight: 0.8},
	{Name: "OpenAI News", URL: "https://openai.com/news/rss.xml", Category: CategoryAI, Weight: 1.0},

	// ============================================
	// FINANCE
	// ============================================
	{Name: "Google News Markets", URL: "https://news.google.com/rss/search?q=financial+markets&hl=en-US&gl=US&ceid=US:en", Category: CategoryFinance, Primary: true, Weight: 1.0},
	{Name: "CNBC", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Category: CategoryFinance, Weight: 1.0},
	{Name: "MarketWatch", URL: "https://feeds.marketwatch.com/marketwatch/topstories", Category: CategoryFinance, Weight: 1.0},
	{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/news/rssindex", Category: CategoryFinance, Weight: 0.9},
	{Name: "Reuters Business", URL: "https://www.reutersagency.com/feed/?best-topics=business-finance&post_type=best", Category: CategoryFinance, Weight: 1.3},
	{Name: "Financial Times", URL: "https://www.ft.com/rss/home", Category: CategoryFinance, Weight: 1.2},
	{Name: "Federal Reserve", URL: "https://www.federalreserve.gov/feeds/press_all.xml", Category: CategoryFinance, Alert: true, Weight: 1.4},
	{Name: "SEC Press", URL: "https://www.sec.gov/news/pressreleases.rss", Category: CategoryFinance, Weight: 1.0},
	{Name: "Treasury", URL: "https://home.treasury.gov/system/files/136/treasury-rss.xml", Category: CategoryFinance, Weight: 0.9},
}

// FeedsByCategory returns the configured sources for one category,
// primaries first.
func FeedsByCategory(category Category) []FeedConfig {
	var primary, rest []FeedConfig
	for _, f := range DefaultFeeds {
		if f.Category != category {
			continue
		}
		if f.Primary {
			primary = append(primary, f)
		} else {
			rest = append(rest, f)
		}
	}
	return append(primary, rest...)
}
