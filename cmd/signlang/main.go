// Package main is the entry point for the SignLang CLI.
package main

import (
	"os"

	"github.com/neeer4j/SignLang/cmd/signlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
