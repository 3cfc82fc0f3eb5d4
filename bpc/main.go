package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/fcfort/betterment-pdf-to-csv/cmd"
)

func main() {
	// optional .env, for defaults like BPC_TICKERS
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion; it returns immediately when not
// running in completion mode.
func completion() {
	pdfs := predict.Files("*.pdf")
	tickerFlags := map[string]complete.Predictor{
		"tickers": predict.Files("*.json"),
		"debug":   predict.Nothing,
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"csv": {
				Flags: map[string]complete.Predictor{
					"o":       predict.Files("*.csv"),
					"tickers": predict.Files("*.json"),
					"debug":   predict.Nothing,
				},
				Args: pdfs,
			},
			"qif":   {Flags: tickerFlags, Args: pdfs},
			"jsonl": {Flags: tickerFlags, Args: pdfs},
			"tx": {
				Flags: map[string]complete.Predictor{
					"head":    predict.Something,
					"tail":    predict.Something,
					"tickers": predict.Files("*.json"),
					"debug":   predict.Nothing,
				},
				Args: pdfs,
			},
			"tickers": {Flags: map[string]complete.Predictor{"tickers": predict.Files("*.json")}},
		},
	}
	c.Complete("bpc")
}
