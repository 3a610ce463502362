package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Set properties of the predefined Logger, including
	// the log entry prefix and a flag to disable printing
	// the time, source file, and line number.
	log.SetPrefix("lg/calorie-banking-go-api: ")
	log.SetFlags(0)

	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	h := Handler{sessions: newSessionStore(cfg.SessionTTL, cfg.MaxSessions)}

	log.Printf("Starting gin app on %s...", cfg.Addr)

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
