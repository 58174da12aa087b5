// ABOUTME: Entry point for the bookquotes CLI
// ABOUTME: Terminal client for the BookQuotes library API

package main

import (
	"fmt"
	"os"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
