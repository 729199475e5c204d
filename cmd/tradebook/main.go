package main

import (
	"github.com/joho/godotenv"

	"github.com/rustyeddy/tradebook/internal/cli"
)

func main() {
	// A .env in the working directory may set JOURNAL_DATA_DIR.
	_ = godotenv.Load()

	cli.Execute()
}
