package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"docstyle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
