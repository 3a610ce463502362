package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// config holds server settings read from the environment (after .env is loaded).
type config struct {
	Addr        string
	SessionTTL  time.Duration
	MaxSessions int
}

// loadConfig reads ADDR, SESSION_TTL and MAX_SESSIONS, falling back to
// defaults for anything unset.
func loadConfig() (config, error) {
	cfg := config{
		Addr:        "localhost:3000",
		SessionTTL:  12 * time.Hour,
		MaxSessions: 1000,
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return config{}, fmt.Errorf("SESSION_TTL must be a positive duration, got %q", v)
		}
		cfg.SessionTTL = ttl
	}
	if v := os.Getenv("MAX_SESSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return config{}, fmt.Errorf("MAX_SESSIONS must be a positive integer, got %q", v)
		}
		cfg.MaxSessions = n
	}
	return cfg, nil
}
