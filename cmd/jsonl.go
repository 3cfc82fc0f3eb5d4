package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	betterment "github.com/fcfort/betterment-pdf-to-csv"
)

type jsonlCmd struct {
	tickers string
	debug   bool
}

func (*jsonlCmd) Name() string { return "jsonl" }
func (*jsonlCmd) Synopsis() string {
	return "convert statement PDFs to ledger transactions in JSONL format"
}
func (*jsonlCmd) Usage() string {
	return `bpc jsonl [-tickers <file>] <statement.pdf>...

  Parses Betterment statement PDFs and outputs transactions in the standard
  JSONL ledger format to stdout.
  Example: bpc jsonl statement.pdf > transactions.jsonl

  Translation cannot be perfect, use with care and review the output.
`
}

func (p *jsonlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.tickers, "tickers", "", "JSON file with extra ticker names.")
	f.BoolVar(&p.debug, "debug", false, "Dump tokenized lines to <input>-debug.txt.")
}

func (p *jsonlCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := betterment.EncodeJSONL(os.Stdout, ref, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding transactions to JSONL: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
