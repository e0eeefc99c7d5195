// Package cmd implements the CLI command structure for todotxt.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// stdout is swapped out by tests to capture command output.
var stdout io.Writer = os.Stdout

// Run executes the todotxt CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todotxt", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	log.SetLevel(log.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	subcommand := "ls"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "json":
		return jsonCommand(cfg, remainingArgs)
	case "ls":
		return lsCommand(cfg, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// readInput returns the raw task list text and a label naming its source.
// Priority: explicit file argument, piped stdin, then the configured
// default file.
func readInput(cfg *config.Config, args []string) (string, string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read task file: %w", err)
		}
		return string(data), args[0], nil
	}

	if !ui.IsTTY(os.Stdin) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return "", "", fmt.Errorf("read task file: %w", err)
	}
	return string(data), cfg.File, nil
}

func versionCommand() error {
	fmt.Fprintf(stdout, "todotxt %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todotxt - A todo.txt task list parser")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todotxt [command] [options] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  ls [file]     List tasks in canonical form (default command)")
	fmt.Fprintln(w, "  json [file]   Emit tasks as a JSON array")
	fmt.Fprintln(w, "  tui [file]    Launch the terminal viewer")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input is the file argument, piped stdin, or the configured file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "json Options:")
	fmt.Fprintln(w, "  -parallel")
	fmt.Fprintln(w, "        Parse lines across a worker pool (unordered output)")
	fmt.Fprintln(w, "  -sorted")
	fmt.Fprintln(w, "        Emit tasks in input line order (overrides -parallel)")
	fmt.Fprintln(w, "  -validate")
	fmt.Fprintln(w, "        Check the emitted document against the output schema")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ls Options:")
	fmt.Fprintln(w, "  -complete | -incomplete")
	fmt.Fprintln(w, "        Keep only finished or unfinished tasks")
	fmt.Fprintln(w, "  -project string | -context string")
	fmt.Fprintln(w, "        Keep only tasks carrying the given +project or @context tag")
}
