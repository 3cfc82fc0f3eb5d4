package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/fcfort/betterment-pdf-to-csv/renderer"
)

type txCmd struct {
	head    int
	tail    int
	tickers string
	debug   bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions parsed from statement PDFs" }
func (*txCmd) Usage() string {
	return `bpc tx [-head <n>] [-tail <n>] [-tickers <file>] <statement.pdf>...

  Parses statement PDFs and prints the reconstructed transactions as a table,
  with options for limiting the output. Nothing is written to disk.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
	f.StringVar(&p.tickers, "tickers", "", "JSON file with extra ticker names.")
	f.BoolVar(&p.debug, "debug", false, "Dump tokenized lines to <input>-debug.txt.")
}

func (p *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
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

	if p.head > 0 && len(txs) > p.head {
		txs = txs[:p.head]
	}
	if p.tail > 0 && len(txs) > p.tail {
		txs = txs[len(txs)-p.tail:]
	}

	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
