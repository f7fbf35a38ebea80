package main

import (
	"github.com/joho/godotenv"

	"github.com/numbeo/numbeo-prices/pkg/cmd"
)

func main() {
	_ = godotenv.Load() // load .env if present; not fatal if missing
	cmd.Execute()
}
