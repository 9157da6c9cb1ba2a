// Package main provides the entry point for the schema synthesis service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schema_agent",
	Short: "Schema.org JSON-LD synthesis service",
	Long:  "schema_agent converts page content into Schema.org JSON-LD markup using deterministic extraction with a single generative-model escalation when the deterministic output fails validation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
