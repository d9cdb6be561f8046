package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/SunnRayy/ai-investment-advisor/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// Optional .env for API keys; absence is fine.
	godotenv.Load()

	// Shell completion; a no-op outside a completion request.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"update": {Flags: map[string]complete.Predictor{"n": nil}},
			"export": {},
			"topic":  {},
		},
	}
	completion.Complete("aia")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
