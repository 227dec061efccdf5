package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/oldenfyre/inventory-console/internal/config"
	api "github.com/oldenfyre/inventory-console/internal/http"
	"github.com/oldenfyre/inventory-console/internal/http/handlers"
	"github.com/oldenfyre/inventory-console/internal/remote"
	"github.com/oldenfyre/inventory-console/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store session.Store
	switch cfg.Session.Store {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb, ctx)
	case "file":
		store = session.NewFileStore(cfg.Auth.SessionFile)
	default:
		log.Fatalf("Unknown session store %q (want file or redis)", cfg.Session.Store)
	}

	gate := session.New(store, cfg.Auth.Password, cfg.Auth.SessionDuration, cfg.Auth.CheckInterval)
	gate.Start(ctx)

	client := remote.New(cfg.API.BaseURL, cfg.API.Timeout).
		WithRateLimit(cfg.API.RateLimit, cfg.API.RateBurst)

	handlers.SetClient(client)
	handlers.SetGate(gate)
	api.SetGate(gate)

	r := api.NewRouter()
	log.Println("✅ Console running on", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
