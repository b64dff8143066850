package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pmoreport/internal/config"
	"pmoreport/internal/llm"
	"pmoreport/internal/logger"
	"pmoreport/internal/report"
	"pmoreport/internal/tracker"
)

func main() {
	cfg, err := config.Load()
	must(err)
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "report":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "tracker xlsx path")
		out := fs.String("out", cfg.OutputDir, "output directory")
		useLLM := fs.Bool("llm", false, "polish narrative fields with Gemini")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		content, err := os.ReadFile(*input)
		must(err)

		extractor := tracker.NewExtractor(cfg)
		records, err := extractor.Ingest(content, filepath.Base(*input))
		must(err)

		ctx := context.Background()
		var formatter llm.Formatter
		if *useLLM {
			formatter, err = llm.NewGeminiFormatter(ctx, cfg)
			must(err)
		}
		records = llm.PolishRecords(ctx, formatter, records)

		zipPath, err := report.WriteBundle(records, *out)
		must(err)

		sum := report.BuildSummary(records)
		fmt.Printf("report done projects=%d on_track=%d at_risk=%d off_track=%d\n",
			sum.Total, sum.OnTrack, sum.AtRisk, sum.OffTrack)
		fmt.Printf("bundle: %s\n", zipPath)
	case "sample":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "sample_tracker.xlsx", "output xlsx path")
		rows := fs.Int("rows", 10, "number of sample projects")
		_ = fs.Parse(os.Args[2:])
		must(tracker.WriteSampleTracker(*out, *rows))
		fmt.Printf("sample tracker written rows=%d output=%s\n", *rows, *out)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: pmoreport <command>")
	fmt.Println("commands:")
	fmt.Println("  report --input=tracker.xlsx [--out=./reports] [--llm]")
	fmt.Println("  sample [--out=sample_tracker.xlsx] [--rows=10]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
