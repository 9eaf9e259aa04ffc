// Package market fetches quotes for the tracked symbol set: indices and
// equities from Yahoo Finance, crypto from CoinGecko. Failures degrade
// silently to fewer quotes, never to an error surfaced to the caller.
package market

// Quote is one market data point in display form.
type Quote struct {
	Symbol        string
	Name          string
	Value         float64
	Change        float64
	ChangePercent float64
}

// Symbols is the tracked symbol set, in display order.
var Symbols = []string{
	"SPX", "DJI", "IXIC",
	"AAPL", "MSFT", "GOOGL", "NVDA", "ASML", "MU", "AVGO", "AMZN",
	"SNPS", "SNOW", "ALAB", "IBM", "PLTR", "CRM",
	"BTC", "ETH",
}

// symbolNames maps display symbols to full names.
var symbolNames = map[string]string{
	"SPX":   "S&P 500",
	"DJI":   "Dow Jones",
	"IXIC":  "NASDAQ",
	"AAPL":  "Apple Inc.",
	"MSFT":  "Microsoft",
	"GOOGL": "Alphabet",
	"NVDA":  "Nvidia",
	"ASML":  "ASML Holding",
	"MU":    "Micron Technology",
	"AVGO":  "Broadcom",
	"AMZN":  "Amazon",
	"SNPS":  "Synopsys",
	"SNOW":  "Snowflake",
	"ALAB":  "Alpha Lab",
	"IBM":   "IBM",
	"PLTR":  "Palantir",
	"CRM":   "Salesforce",
	"BTC":   "Bitcoin",
	"ETH":   "Ethereum",
}

// coingeckoIDs maps crypto display symbols to CoinGecko identifiers.
var coingeckoIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
}

// indexSymbols are quoted with a caret prefix on Yahoo.
var indexSymbols = map[string]bool{
	"SPX":  true,
	"DJI":  true,
	"IXIC": true,
}

// SymbolName returns the display name for a symbol, falling back to the
// symbol itself.
func SymbolName(symbol string) string {
	if name, ok := symbolNames[symbol]; ok {
		return name
	}
	return symbol
}
