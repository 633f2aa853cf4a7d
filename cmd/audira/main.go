package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"audira/internal/app"
	"audira/internal/config"
	"audira/internal/ratelimit"
	"audira/internal/server"
	"audira/internal/util"
	"audira/pkg/auth"
	"audira/pkg/store"
)

func main() {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	tokenTTL, err := config.ParseTokenTTL(cfg.JWTExpiresIn)
	if err != nil {
		log.Fatalf("failed to parse token TTL: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	st := store.NewMemory()

	// Redis carries the token blacklist and rate limits when configured;
	// without it both stay in-process.
	var blacklist store.TokenBlacklist = st
	var signupLimiter, loginLimiter *ratelimit.FixedWindowLimiter
	if cfg.RedisAddr != "" {
		blacklist = store.NewRedisTokenBlacklist(cfg.RedisAddr, cfg.RedisPassword, "")
		if cfg.SignupRateLimitPerMinute > 0 {
			signupLimiter, err = ratelimit.NewRedisFixedWindowLimiter(
				cfg.RedisAddr, cfg.RedisPassword, "audira:ratelimit:signup",
				cfg.SignupRateLimitPerMinute, time.Minute)
			if err != nil {
				log.Fatalf("failed to init signup limiter: %v", err)
			}
		}
		if cfg.LoginRateLimitPerMinute > 0 {
			loginLimiter, err = ratelimit.NewRedisFixedWindowLimiter(
				cfg.RedisAddr, cfg.RedisPassword, "audira:ratelimit:login",
				cfg.LoginRateLimitPerMinute, time.Minute)
			if err != nil {
				log.Fatalf("failed to init login limiter: %v", err)
			}
		}
	}

	appCore := app.New(app.Config{
		Store:         st,
		Tokens:        auth.NewTokenManager(cfg.JWTSecret, tokenTTL),
		Blacklist:     blacklist,
		WebhookSecret: cfg.WebhookSecret,
	})

	httpServer := server.New(server.Config{
		App:           appCore,
		CORSOrigin:    cfg.CORSOrigin,
		SignupLimiter: signupLimiter,
		LoginLimiter:  loginLimiter,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("audira server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}
