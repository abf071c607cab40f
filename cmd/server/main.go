package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"crypto_backend/internal/app/di"
	"crypto_backend/internal/app/router"
	"crypto_backend/internal/config"
	cryptohandler "crypto_backend/internal/feature/crypto/transport/handler"
	cryptousecase "crypto_backend/internal/feature/crypto/usecase"
	pairsadapters "crypto_backend/internal/feature/pairs/adapters"
	pairshandler "crypto_backend/internal/feature/pairs/transport/handler"
	pairsusecase "crypto_backend/internal/feature/pairs/usecase"
	infradb "crypto_backend/internal/platform/db"
	"crypto_backend/internal/platform/http/handler"
	jwtmw "crypto_backend/internal/platform/jwt"
	infraredis "crypto_backend/internal/platform/redis"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config: ", err)
	}

	ctx := context.Background()

	// db
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else if tmp != nil {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	pairRepo := pairsadapters.NewPairRepository(db)
	// Redisキャッシュでラップ
	market := di.NewCachedMarket(rdb, cfg.Cache.Namespace)

	// Usecase
	pairUC := pairsusecase.NewPairUsecase(pairRepo)
	cryptoUC := cryptousecase.NewCryptoUsecase(market)
	// 為替レートはリアルタイムなのでキャッシュを通さない
	rateUC := cryptousecase.NewRateUsecase(di.NewMarket())

	if err := pairUC.SeedPairs(ctx, cfg.Pairs); err != nil {
		log.Fatal("failed to seed pairs: ", err)
	}

	// Handler
	cryptoH := cryptohandler.NewCryptoHandler(cryptoUC)
	rateH := cryptohandler.NewRateHandler(rateUC)
	pairH := pairshandler.NewPairHandler(pairUC)

	var ping handler.CachePinger
	if rdb != nil {
		ping = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	// ルータ生成
	r := router.NewRouter(cryptoH, rateH, pairH, ping)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set. Protected routes will answer 500 until it is set.")
	}

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
