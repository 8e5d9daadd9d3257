package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/pdv/internal/app"
	docpkg "github.com/kk-code-lab/pdv/internal/doc"
)

func printHelp() {
	fmt.Print(`pdv - live-reloading terminal PDF viewer

USAGE:
    pdv <document.pdf>

The document re-renders automatically when the file changes on disk.

KEYS:
    h, left      previous page
    l, right     next page
    +, -         zoom in / out
    r            reload now
    q            quit
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) != 2 {
		printHelp()
		os.Exit(1)
	}
	arg := os.Args[1]
	if arg == "-h" || arg == "--help" {
		printHelp()
		os.Exit(0)
	}

	// Reject unusable paths before any terminal mode change.
	if err := docpkg.Preflight(arg); err != nil {
		fmt.Fprintf(os.Stderr, "pdv: %v\n", err)
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdv: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
