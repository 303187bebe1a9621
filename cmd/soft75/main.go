package main

import (
	"github.com/joho/godotenv"

	"github.com/soft-challenge/soft75/internal/cli"
)

func main() {
	// Optional .env for local overrides; missing file is fine.
	_ = godotenv.Load()

	cli.Execute()
}
