package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/madr/internal/cli"
	"github.com/mrlokans/madr/internal/config"
	"github.com/mrlokans/madr/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is a subcommand that parses its own flags before running.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

var commands = map[string]func() command{
	"create-account": func() command { return cli.NewCreateAccountCommand() },
}

func main() {
	// No arguments means serve
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		entrypoint.Run(config.NewConfig(), Version)
		return
	}

	name, args := os.Args[1], os.Args[2:]

	switch name {
	case "version":
		fmt.Printf("madr %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	}

	newCommand, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	cmd := newCommand()
	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve            Start the HTTP API (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  create-account   Create an account directly in the database\n")
	fmt.Fprintf(os.Stderr, "  version          Print the build version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
