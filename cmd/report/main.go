package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"
	"time"

	"EconTrack/internal/collector"
	"EconTrack/internal/config"
	"EconTrack/internal/fred"
	"EconTrack/internal/model"
	"EconTrack/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags)

	var (
		dataDir    = flag.String("data", filepath.Join("data", "market"), "directory containing market CSV files")
		outDir     = flag.String("out", filepath.Join("reports", "market"), "directory to write chart files")
		startStr   = flag.String("start", "", "start date YYYY-MM-DD (default: 90 days ago)")
		endStr     = flag.String("end", "", "end date YYYY-MM-DD (default: today)")
		window     = flag.Int("window", 20, "rolling volatility window in trading days")
		tickers    = flag.String("tickers", "", "comma-separated ticker stems (default: GSPC,DJI,IXIC,VIX)")
		curve      = flag.Bool("curve", false, "also fetch and chart the current Treasury yield curve")
		curveDate  = flag.String("curve-date", "", "yield curve snapshot date YYYY-MM-DD (default: latest)")
		configPath = flag.String("config", config.DefaultPath, "configuration file, needed for -curve")
	)
	flag.Parse()

	start := parseDate(*startStr, "start")
	end := parseDate(*endStr, "end")

	var list []string
	if *tickers != "" {
		for _, t := range strings.Split(*tickers, ",") {
			if t = strings.TrimSpace(t); t != "" {
				list = append(list, t)
			}
		}
	}

	saved, err := report.WriteMarketReport(*dataDir, *outDir, list, start, end, *window)
	if err != nil {
		log.Fatalf("[FATAL] market report: %v", err)
	}

	if *curve {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[FATAL] load config: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("[FATAL] config validation: %v", err)
		}
		client := fred.NewClient(cfg.FredAPIKey, cfg.Proxy)
		snapshot, err := collector.YieldCurve(client, parseDate(*curveDate, "curve-date"))
		if err != nil {
			log.Fatalf("[FATAL] yield curve: %v", err)
		}
		path := filepath.Join(*outDir, "yield_curve.html")
		if err := report.WriteCurve(snapshot, path); err != nil {
			log.Fatalf("[FATAL] render %s: %v", path, err)
		}
		log.Printf("[INFO] wrote %s", path)
		saved = append(saved, path)
	}

	log.Printf("[INFO] generated %d market visualizations", len(saved))
}

// parseDate parses an optional YYYY-MM-DD flag; empty means unset.
func parseDate(s, name string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		log.Fatalf("[FATAL] invalid -%s date %q, want YYYY-MM-DD", name, s)
	}
	return d
}
