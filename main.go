// Package main provides the entry point for the kintsugi puzzle tool.
package main

import (
	"log"

	"kintsugi/internal/cli"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cli.Execute()
}
