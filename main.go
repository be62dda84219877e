// Package main is the entry point for the grove command.
package main

import (
	"fmt"
	"os"

	"github.com/billie-coop/grove/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
