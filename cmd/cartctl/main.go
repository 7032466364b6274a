// Package main is the entry point for the cartctl CLI.
package main

import (
	"os"

	"agro_cart/cmd/cartctl/cmd"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
