// captionctl manages caption templates and their counter stores from the
// command line. Build with: go build -o bin/captionctl ./cmd/captionctl
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for CAPTIONKIT_* variables; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
