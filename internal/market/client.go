package market

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avaldez/geopulse/internal/logging"
)

const (
	defaultCoinGeckoURL  = "https://api.coingecko.com/api/v3/simple/price"
	defaultYahooQuoteURL = "https://query1.finance.yahoo.com/v7/finance/quote"
	defaultYahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

	defaultTimeout = 10 * time.Second
)

// Client fetches market quotes. Quotes are cached for the session; call
// Invalidate to force a refetch.
type Client struct {
	rest *resty.Client

	coinGeckoURL  string
	yahooQuoteURL string
	yahooChartURL string

	mu    sync.Mutex
	cache []Quote
}

// NewClient creates a market client with the default endpoints. A zero
// timeout selects the default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		rest: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "geopulse/0.1"),
		coinGeckoURL:  defaultCoinGeckoURL,
		yahooQuoteURL: defaultYahooQuoteURL,
		yahooChartURL: defaultYahooChartURL,
	}
}

// Invalidate drops the session cache.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = nil
}

// FetchAll returns quotes for the tracked symbols in display order.
// Sources that fail contribute nothing; the result may be short or
// empty, never an error.
func (c *Client) FetchAll(ctx context.Context) []Quote {
	c.mu.Lock()
	cached := c.cache
	c.mu.Unlock()
	if cached != nil {
		return cached
	}

	var crypto, stocks []string
	for _, s := range Symbols {
		if _, ok := coingeckoIDs[s]; ok {
			crypto = append(crypto, s)
		} else {
			stocks = append(stocks, s)
		}
	}

	var wg sync.WaitGroup
	var cryptoQuotes, stockQuotes []Quote
	wg.Add(2)
	go func() {
		defer wg.Done()
		cryptoQuotes = c.fetchCrypto(ctx, crypto)
	}()
	go func() {
		defer wg.Done()
		stockQuotes = c.fetchStocks(ctx, stocks)
	}()
	wg.Wait()

	all := append(cryptoQuotes, stockQuotes...)
	sortBySymbolOrder(all, Symbols)

	logging.Debug("market data fetched", "quotes", len(all), "symbols", len(Symbols))

	c.mu.Lock()
	c.cache = all
	c.mu.Unlock()
	return all
}

type coinGeckoPrice struct {
	USD       float64 `json:"usd"`
	USDChange float64 `json:"usd_24h_change"`
}

func (c *Client) fetchCrypto(ctx context.Context, symbols []string) []Quote {
	ids := make([]string, 0, len(symbols))
	for _, s := range symbols {
		ids = append(ids, coingeckoIDs[s])
	}
	if len(ids) == 0 {
		return nil
	}

	var prices map[string]coinGeckoPrice
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":                strings.Join(ids, ","),
			"vs_currencies":      "usd",
			"include_24hr_change": "true",
		}).
		SetResult(&prices).
		Get(c.coinGeckoURL)
	if err != nil {
		logging.Debug("coingecko fetch failed", "error", err)
		return nil
	}
	if resp.IsError() {
		logging.Debug("coingecko fetch failed", "status", resp.StatusCode())
		return nil
	}

	var quotes []Quote
	for _, symbol := range symbols {
		price, ok := prices[coingeckoIDs[symbol]]
		if !ok {
			continue
		}
		quotes = append(quotes, Quote{
			Symbol:        symbol,
			Name:          SymbolName(symbol),
			Value:         price.USD,
			Change:        price.USD * price.USDChange / 100,
			ChangePercent: price.USDChange,
		})
	}
	return quotes
}

type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string   `json:"symbol"`
			RegularMarketPrice         *float64 `json:"regularMarketPrice"`
			RegularMarketChange        float64  `json:"regularMarketChange"`
			RegularMarketChangePercent float64  `json:"regularMarketChangePercent"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string   `json:"symbol"`
				RegularMarketPrice *float64 `json:"regularMarketPrice"`
				PreviousClose      float64  `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

// yahooSymbol maps a display symbol to Yahoo's form; indices carry a
// caret prefix.
func yahooSymbol(symbol string) string {
	if indexSymbols[symbol] {
		return "^" + symbol
	}
	return symbol
}

func (c *Client) fetchStocks(ctx context.Context, symbols []string) []Quote {
	if len(symbols) == 0 {
		return nil
	}

	if quotes := c.fetchStocksBatch(ctx, symbols); len(quotes) > 0 {
		return quotes
	}
	// Batch endpoint down, fall back to per-symbol chart requests.
	return c.fetchStocksChart(ctx, symbols)
}

func (c *Client) fetchStocksBatch(ctx context.Context, symbols []string) []Quote {
	yahooSymbols := make([]string, 0, len(symbols))
	for _, s := range symbols {
		yahooSymbols = append(yahooSymbols, yahooSymbol(s))
	}

	var parsed yahooQuoteResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("symbols", strings.Join(yahooSymbols, ",")).
		SetResult(&parsed).
		Get(c.yahooQuoteURL)
	if err != nil {
		logging.Debug("yahoo quote fetch failed", "error", err)
		return nil
	}
	if resp.IsError() {
		logging.Debug("yahoo quote fetch failed", "status", resp.StatusCode())
		return nil
	}

	wanted := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		wanted[s] = true
	}

	var quotes []Quote
	for _, r := range parsed.QuoteResponse.Result {
		display := strings.TrimPrefix(r.Symbol, "^")
		if !wanted[display] || r.RegularMarketPrice == nil {
			continue
		}
		quotes = append(quotes, Quote{
			Symbol:        display,
			Name:          SymbolName(display),
			Value:         *r.RegularMarketPrice,
			Change:        r.RegularMarketChange,
			ChangePercent: r.RegularMarketChangePercent,
		})
	}
	return quotes
}

func (c *Client) fetchStocksChart(ctx context.Context, symbols []string) []Quote {
	var quotes []Quote
	for _, symbol := range symbols {
		var parsed yahooChartResponse
		url := fmt.Sprintf("%s/%s", c.yahooChartURL, yahooSymbol(symbol))
		resp, err := c.rest.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{"interval": "1d", "range": "1d"}).
			SetResult(&parsed).
			Get(url)
		if err != nil || resp.IsError() {
			continue
		}
		if len(parsed.Chart.Result) == 0 {
			continue
		}

		meta := parsed.Chart.Result[0].Meta
		if meta.RegularMarketPrice == nil {
			continue
		}
		price := *meta.RegularMarketPrice
		change := 0.0
		changePercent := 0.0
		if meta.PreviousClose != 0 {
			change = price - meta.PreviousClose
			changePercent = change / meta.PreviousClose * 100
		}
		quotes = append(quotes, Quote{
			Symbol:        symbol,
			Name:          SymbolName(symbol),
			Value:         price,
			Change:        change,
			ChangePercent: changePercent,
		})
	}
	if len(quotes) == 0 {
		logging.Warn("all market quote endpoints failed", "symbols", len(symbols))
	}
	return quotes
}

// sortBySymbolOrder orders quotes by their position in the given symbol
// list, unknown symbols last.
func sortBySymbolOrder(quotes []Quote, order []string) {
	rank := make(map[string]int, len(order))
	for i, s := range order {
		rank[s] = i
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		ri, ok := rank[quotes[i].Symbol]
		if !ok {
			ri = len(order)
		}
		rj, ok := rank[quotes[j].Symbol]
		if !ok {
			rj = len(order)
		}
		return ri < rj
	})
}
