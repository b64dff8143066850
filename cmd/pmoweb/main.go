package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"pmoreport/internal/config"
	"pmoreport/internal/llm"
	"pmoreport/internal/logger"
	"pmoreport/internal/tracker"
	"pmoreport/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)

	var formatter llm.Formatter
	if cfg.LLMEnabled {
		gf, err := llm.NewGeminiFormatter(context.Background(), cfg)
		if err != nil {
			slog.Warn("llm formatter unavailable, continuing without polish", "error", err)
		} else {
			formatter = gf
		}
	}

	extractor := tracker.NewExtractor(cfg)
	handler := web.NewReportHandler(cfg, extractor, formatter)
	router := web.NewRouter(handler)

	if err := web.Run(cfg, router); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
