package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto_backend/internal/app/di"
	"crypto_backend/internal/app/scheduler"
	"crypto_backend/internal/config"
	cryptousecase "crypto_backend/internal/feature/crypto/usecase"
	pairsadapters "crypto_backend/internal/feature/pairs/adapters"
	pairsusecase "crypto_backend/internal/feature/pairs/usecase"
	infradb "crypto_backend/internal/platform/db"
	infraredis "crypto_backend/internal/platform/redis"
	"crypto_backend/internal/shared/ratelimiter"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	schedule := flag.Bool("schedule", false, "run on warm.cron instead of once")
	seed := flag.Bool("seed", false, "register the configured pairs before warming")
	refresh := flag.Bool("refresh", true, "drop cached series before fetching them again")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	pairUC := pairsusecase.NewPairUsecase(pairsadapters.NewPairRepository(db))
	if *seed {
		if err := pairUC.SeedPairs(ctx, cfg.Pairs); err != nil {
			log.Fatal("failed to seed pairs: ", err)
		}
	}

	// キャッシュがなければ温める意味がないので、Redisは必須
	rdb, err := infraredis.NewRedisClient(ctx)
	if err != nil {
		log.Fatal("failed to connect Redis: ", err)
	}
	if rdb == nil {
		log.Fatal("REDIS_HOST is required for the warmer")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("failed to close Redis client", "error", err)
		}
	}()

	market := di.NewCachedMarket(rdb, cfg.Cache.Namespace)
	limiter := ratelimiter.NewRateLimiter(cfg.Warm.RateLimitPerMinute, time.Minute)
	warmUC := cryptousecase.NewWarmUsecase(market, limiter)
	if *refresh {
		warmUC.WithRefresh(market)
	}
	s := scheduler.NewScheduler(pairUC, warmUC, 30*time.Minute)

	if !*schedule {
		if err := s.RunNow(ctx); err != nil {
			log.Fatal(err)
		}
		slog.Info("warm ok")
		return
	}

	if err := s.Register(cfg.Warm.Cron); err != nil {
		log.Fatal(err)
	}
	s.Start()
	<-ctx.Done()
	s.Stop()
}
