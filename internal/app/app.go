package app

import (
	"time"

	"audira/pkg/auth"
	"audira/pkg/store"
)

// Config wires the application core's dependencies.
type Config struct {
	Store     *store.Memory
	Tokens    *auth.TokenManager
	Blacklist store.TokenBlacklist
	// WebhookSecret enables HMAC verification of payment-gateway webhooks.
	// Empty means unsigned bodies are trusted, as the demo gateway sends them.
	WebhookSecret string
}

// App holds the platform's business operations over the in-memory store.
// Handlers validate transport concerns; App owns ids, timestamps,
// authorization and cross-record consistency.
type App struct {
	store         *store.Memory
	tokens        *auth.TokenManager
	blacklist     store.TokenBlacklist
	webhookSecret string
}

// New constructs the application. A nil store gets a fresh seeded Memory;
// a nil blacklist falls back to the store's own in-process set.
func New(cfg Config) *App {
	st := cfg.Store
	if st == nil {
		st = store.NewMemory()
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = auth.NewTokenManager("dev-secret-change-me", time.Hour)
	}
	blacklist := cfg.Blacklist
	if blacklist == nil {
		blacklist = st
	}
	return &App{
		store:         st,
		tokens:        tokens,
		blacklist:     blacklist,
		webhookSecret: cfg.WebhookSecret,
	}
}

// Store exposes the underlying entity store, mainly for tests.
func (a *App) Store() *store.Memory {
	return a.store
}
