// Package main is the entry point for the filetime application.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/filetime/internal/app"
	"github.com/joe/filetime/pkg/filesystem"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	renderer := lipgloss.NewRenderer(os.Stdout)

	// Keep piped output free of escape codes
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	session := filesystem.NewSession()
	defer func() {
		if err := session.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}()

	proc := app.NewProcessor(os.Stdout, os.Stderr, renderer, session.Open)

	return proc.Run(args)
}
