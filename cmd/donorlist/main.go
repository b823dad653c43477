package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/donorlist"
	"github.com/fwojciec/donorlist/parse"
	"github.com/fwojciec/donorlist/pdf"
	donorslog "github.com/fwojciec/donorlist/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Optional; configuration also works from the plain environment.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service overrides the default pipeline. Used for end-to-end
	// testing; when nil, Run wires the real PDF pipeline.
	Service donorlist.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	service := m.Service
	if service == nil {
		service = donorslog.NewLoggingService(&parse.Pipeline{
			Extractor: donorslog.NewLoggingExtractor(pdf.NewExtractor(), logger),
		}, logger)
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Service: service,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("donorlist"),
		kong.Description("Extracts segmented email mailing lists from donor registry PDFs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'donorlist --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}
