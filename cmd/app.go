// Package cmd implements the CLI application to convert Betterment statement
// PDFs into CSV, QIF or JSONL.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	betterment "github.com/fcfort/betterment-pdf-to-csv"
	"github.com/fcfort/betterment-pdf-to-csv/pdftext"
)

// Commands lists the subcommands.
// A main package will register each of them and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&csvCmd{},
	&qifCmd{},
	&jsonlCmd{},
	&txCmd{},
	&tickersCmd{},
}

// loadReference builds the reference tables, merging extra tickers from a
// JSON file ({"TICKER": "Full Name", ...}) when one is given. The path
// defaults to the BPC_TICKERS environment variable, so new tickers need no
// code change.
func loadReference(extraPath string) (*betterment.Reference, error) {
	ref := betterment.DefaultReference()
	if extraPath == "" {
		extraPath = os.Getenv("BPC_TICKERS")
	}
	if extraPath == "" {
		return ref, nil
	}
	data, err := os.ReadFile(extraPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read ticker file %q: %w", extraPath, err)
	}
	var extra map[string]string
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("cannot parse ticker file %q: %w", extraPath, err)
	}
	for ticker, name := range extra {
		ref.AddTicker(ticker, name)
	}
	return ref, nil
}

// parseAll extracts and parses every statement with a fresh walker, then
// runs the shared fee aggregation pass over the concatenated result.
func parseAll(ctx context.Context, ref *betterment.Reference, paths []string, debug bool) ([]betterment.Transaction, error) {
	var txs []betterment.Transaction
	for _, path := range paths {
		lines, err := pdftext.Extract(ctx, path)
		if err != nil {
			return nil, err
		}
		if debug {
			if err := dumpLines(path+"-debug.txt", lines); err != nil {
				return nil, err
			}
		}
		txs = append(txs, betterment.ParseStatement(ref, lines)...)
	}
	return betterment.AggregateFees(txs), nil
}

func dumpLines(path string, lines [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pdftext.Dump(f, lines)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. no TTY).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
