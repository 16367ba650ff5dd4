// Package main provides the entry point for the uptime example binary.
package main

import (
	"os"

	"uptime/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
