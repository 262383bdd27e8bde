package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"artspace/internal/catalog"
	"artspace/internal/config"
	"artspace/internal/logger"
	"artspace/internal/output"
	"artspace/ui/console"
	"artspace/ui/tui"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (default $HOME/.config/artspace/config.yml)")
	list := flag.Bool("list", false, "print the catalog and exit")
	show := flag.Int("show", 0, "print artwork N (1-based) and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("artspace", version)
		return
	}

	if err := run(*configPath, *list, *show); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, list bool, show int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	c, err := catalog.Load(cfg.Catalog())
	if err != nil {
		return err
	}

	switch {
	case list:
		console.PrintListing(os.Stdout, output.BuildListing(c))
		return nil
	case show != 0:
		a, err := c.Resolve(show - 1)
		if err != nil {
			return fmt.Errorf("show %d: %w", show, err)
		}
		console.PrintArtwork(os.Stdout, a, c.Size())
		return nil
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = logger.DefaultFile()
	}
	log, err := logger.NewFile(cfg.LogLevel, logFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting gallery",
		zap.String("version", version),
		zap.String("catalog", c.Name()),
		zap.Int("size", c.Size()),
		zap.String("locale", c.Locale()),
		zap.Bool("mouse", cfg.Mouse),
		zap.Bool("animate", cfg.Animate),
	)

	if err := tui.Start(c, log, tui.Options{Mouse: cfg.Mouse, Animate: cfg.Animate}); err != nil {
		log.Error("gallery exited", zap.Error(err))
		return err
	}
	return nil
}
