package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StockLens/internal/analyzer"
	"StockLens/internal/chart"
	"StockLens/internal/config"
	"StockLens/internal/loader"
	"StockLens/internal/report"
	"StockLens/internal/scheduler"
)

// Exit codes, matching the documented CLI contract.
const (
	exitOK          = 0
	exitError       = 1 // usage or computation error
	exitMissingData = 2 // data file not found
	exitLoadFailure = 3 // data file unreadable or unparseable
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("stocklens", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default configs/config.yaml, or CONFIG_PATH)")
	dataFile := fs.String("file", "", "CSV data file (overrides config)")
	withBands := fs.Bool("bands", false, "also print Bollinger Bands")
	withRSI := fs.Bool("rsi", false, "also print Relative Strength Index")
	chartPath := fs.String("chart", "", "write an HTML price chart to this path")
	watchSpec := fs.String("watch", "", "cron spec (with seconds) to re-evaluate on a schedule")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: stocklens [flags] SYMBOL\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitError
	}
	symbol := fs.Arg(0)

	// .env before config, so its variables take part in the overrides.
	_ = godotenv.Load()

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			cfgPath = v
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("[ERROR] load config: %v", err)
		return exitError
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[ERROR] config validation: %v", err)
		return exitError
	}
	if *dataFile != "" {
		cfg.Data.CSVPath = *dataFile
		cfg.Data.SQLitePath = ""
	}

	// Pick the price source
	var src loader.Source
	if cfg.Data.SQLitePath != "" {
		s, err := loader.OpenSQLiteSource(cfg.Data.SQLitePath)
		if err != nil {
			log.Printf("[ERROR] open sqlite source: %v", err)
			return exitLoadFailure
		}
		defer s.Close()
		src = s
	} else {
		if _, err := os.Stat(cfg.Data.CSVPath); err != nil {
			log.Printf("[ERROR] data file not found: %s", cfg.Data.CSVPath)
			return exitMissingData
		}
		src = loader.NewCSVSource(cfg.Data.CSVPath)
	}
	log.Printf("[INFO] price source: %s", src.Name())

	a := analyzer.New(src, cfg)

	evaluate := func() int {
		rep, err := a.Evaluate(symbol, *withBands, *withRSI)
		if err != nil {
			log.Printf("[ERROR] evaluate %s: %v", symbol, err)
			if errors.Is(err, os.ErrNotExist) {
				return exitMissingData
			}
			if errors.Is(err, loader.ErrParse) {
				return exitLoadFailure
			}
			return exitError
		}
		fmt.Print(report.Format(rep))

		if *chartPath != "" {
			series, err := src.LoadSeries(symbol)
			if err != nil {
				log.Printf("[ERROR] reload series for chart: %v", err)
				return exitLoadFailure
			}
			if err := chart.WriteHTML(series, rep, cfg.Chart.Width, cfg.Chart.Height, *chartPath); err != nil {
				log.Printf("[ERROR] write chart: %v", err)
				return exitError
			}
			log.Printf("[INFO] chart written to %s", *chartPath)
		}
		return exitOK
	}

	if *watchSpec == "" {
		return evaluate()
	}

	// Watch mode: evaluate now, then on every cron tick until interrupted.
	if code := evaluate(); code != exitOK {
		return code
	}
	sched := scheduler.New(func() { evaluate() })
	if err := sched.Register(*watchSpec); err != nil {
		log.Printf("[ERROR] %v", err)
		return exitError
	}
	sched.Start()
	defer sched.Stop()

	log.Printf("[INFO] watching %s on schedule %q. Press Ctrl+C to stop.", symbol, *watchSpec)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping")
	return exitOK
}
