package main

import (
	"flag"
	"log"
	"os"

	"TradeScope/internal/di"
	"TradeScope/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	outputPath := flag.String("output", "", "chart output path (overrides config)")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *outputPath != "" {
		cfg.Output.ChartPath = *outputPath
	}

	log.Printf("env=%s backend=%s chart=%s", cfg.Environment, cfg.Export.Backend, cfg.Output.ChartPath)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until shutdown event or signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
