package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/yankeeinlondon/schematic"
	"github.com/yankeeinlondon/schematic/cmd/schematic/commands"
)

func main() {
	// Local overrides for SCHEMATIC_* configuration; missing file is fine.
	_ = godotenv.Load()
	initLogging(os.Getenv("SCHEMATIC_LOG_LEVEL"))

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schematic v%s\n", schematic.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inject":
		if err := commands.HandleInject(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	known := []string{"generate", "validate", "inject", "mcp", "version", "help"}
	best := ""
	bestDist := 3
	for _, cmd := range known {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// initLogging configures slog with tint for colored, concise stderr output.
// Colors are disabled when stderr is not a terminal.
func initLogging(level string) {
	ll := &slog.LevelVar{}
	switch level {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "info":
		// default
	case "warn":
		ll.Set(slog.LevelWarn)
	case "error":
		ll.Set(slog.LevelError)
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

func printUsage() {
	fmt.Println(`schematic - typed API client generation from declarative definitions

Usage:
  schematic <command> [options]

Commands:
  generate    Generate Go client source for catalog API definitions
  validate    Validate catalog API definitions and report issues
  inject      Inject or replace an enum declaration in a Go source file
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  schematic generate -all -o ./internal/clients
  schematic generate -api openai -api anthropic -o ./clients -p clients
  schematic validate -all -format json
  schematic inject -file schema/voice.go -name Voice Alloy=alloy Echo=echo
  schematic mcp

Run 'schematic <command> --help' for more information on a command.`)
}
