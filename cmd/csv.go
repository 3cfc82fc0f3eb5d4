package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	betterment "github.com/fcfort/betterment-pdf-to-csv"
)

type csvCmd struct {
	output  string
	tickers string
	debug   bool
}

func (*csvCmd) Name() string     { return "csv" }
func (*csvCmd) Synopsis() string { return "convert statement PDFs to a transactions CSV" }
func (*csvCmd) Usage() string {
	return `bpc csv [-o <file>] [-tickers <file>] <statement.pdf>...

  Parses one or more Betterment statement PDFs and writes all share
  transactions into a single CSV file. Requires pdftotext on the PATH.

Usage Examples:
# Writes transactions.csv from two quarterly statements.
$ bpc csv statement-q1.pdf statement-q2.pdf

`
}

func (p *csvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "transactions.csv", "Output CSV file.")
	f.StringVar(&p.tickers, "tickers", "", "JSON file with extra ticker names.")
	f.BoolVar(&p.debug, "debug", false, "Dump tokenized lines to <input>-debug.txt.")
}

func (p *csvCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one statement PDF.")
		return subcommands.ExitUsageError
	}

	ref, err := loadReference(p.tickers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs, err := parseAll(ctx, ref, f.Args(), p.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Encode fully in memory first so a failure leaves no partial file.
	var buf bytes.Buffer
	if err := betterment.EncodeCSV(&buf, ref, txs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(p.output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Wrote %d transactions to %s\n", len(txs), p.output)
	return subcommands.ExitSuccess
}
