package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	betterment "github.com/fcfort/betterment-pdf-to-csv"
)

type qifCmd struct {
	tickers string
	debug   bool
}

func (*qifCmd) Name() string { return "qif" }
func (*qifCmd) Synopsis() string {
	return "convert a statement PDF to QIF files, one per goal"
}
func (*qifCmd) Usage() string {
	return `bpc qif [-tickers <file>] <statement.pdf>

  Parses a Betterment statement PDF and writes one QIF file per goal,
  <base>-build_wealth.qif and <base>-safety_net.qif, for import into
  Moneydance or other financial software. Requires pdftotext on the PATH.
`
}

func (p *qifCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.tickers, "tickers", "", "JSON file with extra ticker names.")
	f.BoolVar(&p.debug, "debug", false, "Dump tokenized lines to <input>-debug.txt.")
}

func (p *qifCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide exactly one statement PDF.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)
	base := strings.TrimSuffix(path, filepath.Ext(path))

	ref, err := loadReference(p.tickers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs, err := parseAll(ctx, ref, []string{path}, p.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Encode fully in memory first so a failure leaves no partial files.
	var buildWealth, safetyNet bytes.Buffer
	streams := map[betterment.Goal]io.Writer{
		betterment.GoalBuildWealth: &buildWealth,
		betterment.GoalSafetyNet:   &safetyNet,
	}
	if err := betterment.EncodeQIF(streams, ref, txs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	outputs := map[string]*bytes.Buffer{
		base + "-build_wealth.qif": &buildWealth,
		base + "-safety_net.qif":   &safetyNet,
	}
	for name, buf := range outputs {
		if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", name)
	}
	return subcommands.ExitSuccess
}
