package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/donorlist"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot open %q: %s\n", c.Path, err)
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	extraction, err := deps.Service.Extract(deps.Ctx, f, info.Size())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", donorlist.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: check that the document has the expected registry structure")
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(extraction.Records)
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(extraction.Report), 0o644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot write %q: %s\n", c.Output, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d records, %d corrections)\n",
			c.Output, len(extraction.Records), len(extraction.Corrections))
		return nil
	}

	fmt.Fprintln(deps.Stdout, extraction.Report)
	return nil
}
