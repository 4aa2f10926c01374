package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"EconTrack/internal/collector"
	"EconTrack/internal/config"
	"EconTrack/internal/fred"
	"EconTrack/internal/history"
	"EconTrack/internal/model"
	"EconTrack/internal/store"
	"EconTrack/internal/yahoo"
)

// domain is one updatable data family with its runner.
type domain struct {
	name    string
	enabled bool
	run     func(context.Context) ([]store.UpdateResult, error)
}

func main() {
	log.SetFlags(log.LstdFlags)

	var (
		market     = flag.Bool("market", false, "update market data only")
		bonds      = flag.Bool("bonds", false, "update bond data only")
		indicators = flag.Bool("indicators", false, "update economic indicators only")
		all        = flag.Bool("all", false, "update all data")
		configPath = flag.String("config", config.DefaultPath, "path to the configuration file")
		seriesPath = flag.String("series", "", "optional YAML catalog overriding the default series sets")
	)
	flag.Parse()

	// No domain flags means everything.
	if !*market && !*bonds && !*indicators {
		*all = true
	}

	log.Println("[INFO] economic data update starting...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	var catalog *config.Catalog
	if *seriesPath != "" {
		catalog, err = config.LoadCatalog(*seriesPath)
		if err != nil {
			log.Fatalf("[FATAL] load series catalog: %v", err)
		}
		log.Printf("[INFO] using series catalog %s", *seriesPath)
	}

	// Init run recorder
	var rec history.Recorder
	if cfg.HistoryDB != "" {
		sr, err := history.NewSQLiteRecorder(cfg.HistoryDB)
		if err != nil {
			log.Printf("[WARN] init history recorder failed, using noop: %v", err)
			rec = history.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = history.NewNoopRecorder()
	}

	// Interrupts cancel between series; already-written files stay on disk.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fredClient := fred.NewClient(cfg.FredAPIKey, cfg.Proxy)
	yahooClient := yahoo.NewClient(cfg.Proxy)

	var bondRequests, indicatorRequests []model.SeriesRequest
	var tickers []string
	if catalog != nil {
		bondRequests = catalog.BondRequests()
		indicatorRequests = catalog.IndicatorRequests()
		tickers = catalog.Market
	}

	domains := []domain{
		{"market", *market || *all, func(ctx context.Context) ([]store.UpdateResult, error) {
			return collector.UpdateMarket(ctx, yahooClient, tickers, cfg.MarketDir())
		}},
		{"bonds", *bonds || *all, func(ctx context.Context) ([]store.UpdateResult, error) {
			return collector.UpdateBonds(ctx, fredClient, bondRequests, cfg.BondsDir())
		}},
		{"indicators", *indicators || *all, func(ctx context.Context) ([]store.UpdateResult, error) {
			return collector.UpdateIndicators(ctx, fredClient, indicatorRequests, cfg.IndicatorsDir())
		}},
	}

	status := make(map[string]string, len(domains))
	for _, d := range domains {
		status[d.name] = "Not attempted"
	}

	updates := 0
	failed := false
	for _, d := range domains {
		if !d.enabled {
			continue
		}
		if ctx.Err() != nil {
			log.Println("[WARN] update interrupted")
			failed = true
			break
		}
		log.Printf("[INFO] --- updating %s data ---", d.name)
		run := history.NewRunRecord(d.name)
		results, err := d.run(ctx)
		run.Finished = time.Now()
		if err != nil {
			log.Printf("[ERROR] update %s: %v", d.name, err)
			status[d.name] = "Failed"
			failed = true
		} else {
			log.Printf("[INFO] wrote %d %s files", len(results), d.name)
			status[d.name] = "Success"
			updates++
			run.OK = true
			run.AddResults(results)
		}
		if err := rec.RecordRun(run); err != nil {
			log.Printf("[ERROR] record run: %v", err)
		}
	}

	fmt.Println()
	fmt.Println("--- Update Summary ---")
	for _, d := range domains {
		fmt.Printf("%s: %s\n", title(d.name), status[d.name])
	}
	fmt.Printf("\nCompleted %d updates.\n", updates)

	now := time.Now()
	for _, d := range domains {
		if status[d.name] != "Success" {
			continue
		}
		if next, ok := cfg.NextUpdate(d.name, now); ok {
			log.Printf("[INFO] next suggested %s update: %s", d.name, next.Format("2006-01-02 15:04"))
		}
	}

	if failed || ctx.Err() != nil {
		os.Exit(1)
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
