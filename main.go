// Package main controls the user interaction logic for the pw application.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashcracky/pw/pkg/args"
	"github.com/hashcracky/pw/pkg/generate"
)

// version is the current version of the pw application.
var version = "0.2.0"

// logLevel is the minimum level of diagnostic logs written to stderr. It is
// set at build time, e.g. -ldflags "-X main.logLevel=debug".
var logLevel = "warn"

// newLogger builds the text logger used for diagnostics.
//
// Args:
// w: io.Writer - Destination for log records.
// level: string - Level name understood by slog ("debug", "info", "warn", "error").
// Unknown names fall back to warn.
//
// Returns:
// *slog.Logger - Configured logger.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// run parses the arguments, generates a password and writes it out.
//
// Args:
// tokens: []string - Command-line arguments without the program name.
// stdout: io.Writer - Destination for the password and help text.
// stderr: io.Writer - Destination for error messages.
// src: generate.Source - Randomness used for generation.
//
// Returns:
// int - Process exit code.
func run(tokens []string, stdout io.Writer, stderr io.Writer, src generate.Source) int {
	cfg, help, err := args.Parse(tokens)
	if err != nil {
		fmt.Fprintf(stderr, "[!] %s.\n", err)
		return 1
	}

	if help {
		fmt.Fprint(stdout, args.Usage(version))
		return 0
	}

	password, err := generate.Generate(cfg, src)
	if err != nil {
		fmt.Fprintf(stderr, "[!] %s.\n", err)
		return 1
	}

	fmt.Fprintln(stdout, password)
	return 0
}

// main is the entry point for the pw application.
func main() {
	slog.SetDefault(newLogger(os.Stderr, logLevel))

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, generate.NewSource()))
}
