package main

import (
	"github.com/joho/godotenv"

	"github.com/guidepost-labs/guidepost/cmd"
)

func main() {
	// Best-effort: a local .env may carry GUIDEPOST_INTAKE_SECRET.
	_ = godotenv.Load()

	cmd.Execute()
}
