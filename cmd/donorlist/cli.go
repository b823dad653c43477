package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/donorlist"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service donorlist.ExtractionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract a mailing list from a donor registry PDF"`
	Serve   ServeCmd   `cmd:"" help:"Serve the upload web interface"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path   string `arg:"" help:"PDF file to process"`
	Output string `short:"o" help:"Write the report to this file instead of stdout"`
	JSON   bool   `help:"Print extracted records as JSON instead of the report"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"DONORLIST_ADDR" help:"HTTP listen address"`
}
