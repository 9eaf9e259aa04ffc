package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avaldez/geopulse/internal/config"
	"github.com/avaldez/geopulse/internal/feeds"
	"github.com/avaldez/geopulse/internal/gazetteer"
	"github.com/avaldez/geopulse/internal/logging"
	"github.com/avaldez/geopulse/internal/market"
	"github.com/avaldez/geopulse/internal/mentions"
	"github.com/avaldez/geopulse/internal/sector"
	"github.com/avaldez/geopulse/internal/situation"
)

var version = "0.1.0"

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "geopulse",
		Short: "Geopolitical news pulse from the terminal",
		Long: `Geopulse aggregates RSS news and distills it into signals:

  - Country mentions extracted from headlines
  - Sector heat scores driven by classified news
  - Per-country situation briefs with geographic context
  - Market quotes for tracked indices, stocks and crypto`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Close()
		},
	}

	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(scoresCmd())
	rootCmd.AddCommand(mentionsCmd())
	rootCmd.AddCommand(situationCmd())
	rootCmd.AddCommand(countriesCmd())
	rootCmd.AddCommand(marketsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadPool fetches every configured feed and flattens the per-category
// results into one pool, category order preserved.
func loadPool(ctx context.Context) (*config.Config, []feeds.Item, map[feeds.Category][]feeds.Item, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	fetcher := feeds.NewFetcher(
		time.Duration(cfg.Feeds.TimeoutSeconds)*time.Second,
		cfg.Feeds.MaxItemsPerFeed,
	)
	byCategory := fetcher.FetchAll(ctx, feeds.DefaultFeeds)

	var pool []feeds.Item
	for _, c := range feeds.Categories {
		pool = append(pool, byCategory[c]...)
	}
	return cfg, pool, byCategory, nil
}

func newExtractor() *mentions.Extractor {
	return mentions.NewExtractor(gazetteer.NewIndex(gazetteer.Countries))
}

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all feeds and show the item pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, byCategory, err := loadPool(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tITEMS\tLATEST")
			for _, c := range feeds.Categories {
				items := byCategory[c]
				latest := ""
				if len(items) > 0 {
					latest = items[0].Title
					if len(latest) > 60 {
						latest = latest[:57] + "..."
					}
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", c, len(items), latest)
			}
			return w.Flush()
		},
	}
}

func scoresCmd() *cobra.Command {
	var showNews bool

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show news-driven sector heat scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg, pool, _, err := loadPool(cmd.Context())
			if err != nil {
				return err
			}

			scoringCfg := sector.DefaultConfig()
			scoringCfg.TimeWindowHours = appCfg.Scoring.TimeWindowHours
			scoringCfg.MaxTopNews = appCfg.Scoring.MaxTopNews

			now := time.Now()
			classifications := sector.ClassifyItems(pool, now)
			scores := sector.CalculateAll(classifications, scoringCfg, now)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SECTOR\tSCORE\tNEWS\tPOS\tNEG\tNEU")
			for _, s := range sector.Sectors {
				sc := scores[s]
				fmt.Fprintf(w, "%s\t%+.1f\t%d\t%d\t%d\t%d\n",
					sc.Sector, sc.Score, sc.NewsCount,
					sc.PositiveCount, sc.NegativeCount, sc.NeutralCount)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if showNews {
				for _, s := range sector.Sectors {
					sc := scores[s]
					if len(sc.TopNews) == 0 {
						continue
					}
					fmt.Printf("\n%s:\n", sc.Sector)
					for _, item := range sc.TopNews {
						fmt.Printf("  [%s] %s\n", item.Source, item.Title)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showNews, "news", false, "also list top news per sector")
	return cmd
}

func mentionsCmd() *cobra.Command {
	var (
		timeRange string
		category  string
		search    string
	)

	cmd := &cobra.Command{
		Use:   "mentions [country]",
		Short: "Show country mentions extracted from the news pool",
		Long: `Without arguments, lists all mentioned countries by volume.
With a country name or variant, lists the matching news items.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, _, err := loadPool(cmd.Context())
			if err != nil {
				return err
			}
			extractor := newExtractor()

			if len(args) == 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "COUNTRY\tMENTIONS\tLATEST")
				for _, m := range extractor.Extract(pool) {
					fmt.Fprintf(w, "%s\t%d\t%s\n",
						m.Name, m.MentionCount, situation.TimeAgo(m.LatestMention, time.Now()))
				}
				return w.Flush()
			}

			svc := mentions.NewService(extractor)
			items := svc.MentionsFor(pool, args[0], mentions.Filters{
				TimeRange: mentions.TimeRange(timeRange),
				Category:  feeds.Category(category),
				Search:    search,
			})

			if len(items) == 0 {
				fmt.Printf("No mentions of %q found.\n", args[0])
				return nil
			}
			for _, item := range items {
				fmt.Printf("%-9s [%s] %s\n",
					situation.TimeAgo(item.PubDate, time.Now()), item.Source, item.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timeRange, "range", "all", "time range: 24h, 7d, 30d, all")
	cmd.Flags().StringVar(&category, "category", "", "filter by feed category")
	cmd.Flags().StringVar(&search, "search", "", "free-text filter over title and description")
	return cmd
}

func situationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "situation <country>",
		Short: "Show the aggregated situation for a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, _, err := loadPool(cmd.Context())
			if err != nil {
				return err
			}

			builder := situation.NewBuilder(newExtractor())
			sit := builder.Build(args[0], pool, time.Now())

			fmt.Printf("%s  (local time %s)\n", sit.Country, sit.LocalTime)
			fmt.Printf("Activity: %s  (%d events in last %dh: %d news, %d conflict, %d infrastructure, %d other)\n",
				strings.ToUpper(string(sit.ActivityLevel)),
				sit.RecentActivity.TotalEvents, sit.RecentActivity.WindowHours,
				sit.RecentActivity.ByType.News, sit.RecentActivity.ByType.Conflict,
				sit.RecentActivity.ByType.Infrastructure, sit.RecentActivity.ByType.Other)

			if len(sit.RelevantEvents) > 0 {
				fmt.Println("\nRecent events:")
				for _, e := range sit.RelevantEvents {
					fmt.Printf("  %-14s %-9s [%s] %s\n", e.Type, e.TimeAgo, e.Source, e.Title)
				}
			}

			geo := sit.Geographic
			if len(geo.Hotspots) > 0 {
				fmt.Println("\nHotspots:")
				for _, h := range geo.Hotspots {
					fmt.Printf("  %s (%s)\n", h.Name, h.Level)
				}
			}
			if len(geo.ConflictZones) > 0 {
				fmt.Println("\nConflict zones:")
				for _, z := range geo.ConflictZones {
					fmt.Printf("  %s\n", z)
				}
			}
			if len(geo.Infrastructure) > 0 {
				fmt.Println("\nStrategic infrastructure:")
				for _, i := range geo.Infrastructure {
					fmt.Printf("  %s (%s)\n", i.Name, i.Kind)
				}
			}
			return nil
		},
	}
}

func countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List tracked countries and their variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := gazetteer.NewIndex(gazetteer.Countries)
			entries := idx.Entries()
			sorted := make([]gazetteer.Entry, len(entries))
			copy(sorted, entries)
			sort.Slice(sorted, func(i, j int) bool {
				return sorted[i].Name < sorted[j].Name
			})

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COUNTRY\tVARIANTS")
			for _, e := range sorted {
				fmt.Fprintf(w, "%s\t%s\n", e.Name, strings.Join(e.Variants, ", "))
			}
			return w.Flush()
		},
	}
}

func marketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markets",
		Short: "Show quotes for tracked markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Market.Enabled {
				fmt.Println("Market data is disabled in the configuration.")
				return nil
			}

			client := market.NewClient(time.Duration(cfg.Market.TimeoutSeconds) * time.Second)
			quotes := client.FetchAll(cmd.Context())
			if len(quotes) == 0 {
				fmt.Println("No market data available.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tNAME\tVALUE\tCHANGE\tCHANGE%")
			for _, q := range quotes {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%+.2f\t%+.2f%%\n",
					q.Symbol, q.Name, q.Value, q.Change, q.ChangePercent)
			}
			return w.Flush()
		},
	}
}
