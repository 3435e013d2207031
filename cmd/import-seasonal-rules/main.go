package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/cache"
	"github.com/staylane/pricingservice/internal/config"
	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/repository/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file; environment only when empty")
	dryRun := flag.Bool("dry-run", false, "parse and validate the file without writing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <rules.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	if err := run(*configPath, flag.Arg(0), *dryRun, logger); err != nil {
		logger.Fatal("Import failed", zap.Error(err))
	}
}

func run(configPath, csvPath string, dryRun bool, logger *zap.Logger) error {
	_ = godotenv.Load()

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rules, skipped, err := readRules(file)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		logger.Warn("Skipping row", zap.Int("line", s.Line), zap.Error(s.Err))
	}
	logger.Info("Loaded seasonal rules from CSV",
		zap.Int("rules", len(rules)),
		zap.Int("skipped", len(skipped)))

	if dryRun || len(rules) == 0 {
		return nil
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{DSN: cfg.Postgres.DSN, MaxConns: cfg.Postgres.MaxConns})
	if err != nil {
		return err
	}
	store, err := postgres.NewStoreWithPool(pool)
	if err != nil {
		pool.Close()
		return err
	}
	defer store.Close()

	n, err := store.SeasonalRules().BulkUpsert(ctx, rules)
	if err != nil {
		return fmt.Errorf("failed to import seasonal rules: %w", err)
	}
	logger.Info("Imported seasonal rules", zap.Int("upserted", n))

	if cfg.CacheEnabled() {
		c, err := cache.NewCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Skipping quote cache invalidation", zap.Error(err))
			return nil
		}
		defer c.Close()
		cleared := invalidateQuotes(ctx, cache.NewQuoteCache(c, cfg.Pricing.CacheTTL), rules, logger)
		logger.Info("Invalidated cached quotes", zap.Int("hotels", cleared))
	}
	return nil
}
