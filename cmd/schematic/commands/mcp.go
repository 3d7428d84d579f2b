package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/yankeeinlondon/schematic/internal/cliutil"
	"github.com/yankeeinlondon/schematic/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematic mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the MCP server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes catalog, validate, generate, and inject_enum\n")
		cliutil.Writef(fs.Output(), "tools. Defaults come from SCHEMATIC_* environment variables:\n\n")
		cliutil.Writef(fs.Output(), "  SCHEMATIC_OUTPUT_DIR            default output directory for generate\n")
		cliutil.Writef(fs.Output(), "  SCHEMATIC_PACKAGE               default package name for generated code\n")
		cliutil.Writef(fs.Output(), "  SCHEMATIC_DRY_RUN               validate without writing (true/false)\n")
		cliutil.Writef(fs.Output(), "  SCHEMATIC_VALIDATE_STRICT       treat warnings as errors (true/false)\n")
		cliutil.Writef(fs.Output(), "  SCHEMATIC_VALIDATE_NO_WARNINGS  omit warnings from reports (true/false)\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client
// disconnects or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
