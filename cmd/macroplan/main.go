// CLI for planning a week of macros from the terminal.
// Prints a baseline from known macros or a body profile, or a redistributed
// week with the "Hey coach!" share text.
// Usage: go run ./cmd/macroplan week --protein 150 --carbs 200 --fats 60 --set M=2200
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; it can set MACROPLAN_PROFILE.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
