package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type tickersCmd struct {
	tickers string
}

func (*tickersCmd) Name() string     { return "tickers" }
func (*tickersCmd) Synopsis() string { return "list the known tickers and security names" }
func (*tickersCmd) Usage() string {
	return `bpc tickers [-tickers <file>]

  Prints the ticker reference table the parser resolves security names
  against, including any extras merged from the given JSON file or from the
  file named by the BPC_TICKERS environment variable.
`
}

func (p *tickersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.tickers, "tickers", "", "JSON file with extra ticker names.")
}

func (p *tickersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ref, err := loadReference(p.tickers)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("| Ticker | Name |\n|---|---|\n")
	for ticker, name := range ref.Tickers() {
		fmt.Fprintf(&b, "| %s | %s |\n", ticker, name)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
