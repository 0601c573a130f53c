package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fintrack/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	// A local .env file may carry FINTRACK_* variables.
	godotenv.Load()

	flag.Parse()
	cmd.InitLogger()
	cmd.LoadConfig()
	os.Exit(int(commander.Execute(context.Background())))
}
