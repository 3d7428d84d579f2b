package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/yankeeinlondon/schematic"
	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/generator"
	"github.com/yankeeinlondon/schematic/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	APIs        apiList
	All         bool
	Output      string
	PackageName string
	DryRun      bool
	Strict      bool
	NoWarnings  bool
	NoReadme    bool
	NoDoc       bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.Var(&flags.APIs, "api", "catalog API to generate (repeatable)")
	fs.BoolVar(&flags.All, "all", false, "generate every API in the catalog")
	fs.StringVar(&flags.Output, "o", "", "output directory for generated files (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory for generated files (required)")
	fs.StringVar(&flags.PackageName, "p", "schema", "Go package name for generated code")
	fs.StringVar(&flags.PackageName, "package", "schema", "Go package name for generated code")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "run generation and validation but write nothing")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")
	fs.BoolVar(&flags.NoReadme, "no-readme", false, "don't generate README.md file")
	fs.BoolVar(&flags.NoDoc, "no-doc", false, "don't generate doc.go file")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematic generate [flags]\n\n")
		cliutil.Writef(fs.Output(), "Generate typed Go client source from catalog API definitions.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematic generate -all -o ./internal/clients\n")
		cliutil.Writef(fs.Output(), "  schematic generate -api openai -o ./clients -p clients\n")
		cliutil.Writef(fs.Output(), "  schematic generate -api openai -api anthropic -o ./clients\n")
		cliutil.Writef(fs.Output(), "  schematic generate -all -o ./clients -dry-run\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The output directory is created if it does not exist\n")
		cliutil.Writef(fs.Output(), "  - Definitions sharing a module land in a single .go file\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate command takes no positional arguments")
	}

	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}

	defs, err := resolveDefinitions(flags.APIs, flags.All)
	if err != nil {
		return err
	}

	startTime := time.Now()
	result, err := generator.GenerateWithOptions(
		generator.WithDefinitions(defs...),
		generator.WithOutputDir(flags.Output),
		generator.WithPackageName(flags.PackageName),
		generator.WithDryRun(flags.DryRun),
		generator.WithStrictMode(flags.Strict),
		generator.WithIncludeInfo(!flags.NoWarnings),
		generator.WithReadme(!flags.NoReadme),
		generator.WithDoc(!flags.NoDoc),
		generator.WithCommand(regenerateCommand(flags)),
	)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	// Print results
	fmt.Printf("API Client Generator\n")
	fmt.Printf("====================\n\n")
	fmt.Printf("schematic version: %s\n", schematic.Version())
	fmt.Printf("Definitions: %s\n", definitionNames(defs))
	fmt.Printf("Package: %s\n", result.PackageName)
	fmt.Printf("Clients: %d\n", result.GeneratedClients)
	fmt.Printf("Wrappers: %d\n", result.GeneratedWrappers)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	// Print issues
	if len(result.Issues) > 0 {
		fmt.Printf("Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	// Write files. Dry runs still go through the mutation pipeline so every
	// file is validated, but nothing lands on disk.
	if !flags.DryRun {
		if err := os.MkdirAll(flags.Output, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if !flags.DryRun || dirExists(flags.Output) {
		if err := result.WriteFiles(flags.Output); err != nil {
			return fmt.Errorf("writing files: %w", err)
		}
	}

	if flags.DryRun {
		fmt.Printf("Dry run: no files written\n\n")
	}
	fmt.Printf("Generated Files (%d):\n", len(result.Files))
	for _, file := range result.Files {
		fmt.Printf("  - %s/%s (%d bytes)\n", flags.Output, file.Name, len(file.Content))
	}
	fmt.Println()

	// Print summary
	if result.Success {
		fmt.Printf("✓ Generation successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Println()
	} else {
		fmt.Printf("✗ Generation completed with %d critical issue(s)", result.CriticalCount)
		if result.WarningCount > 0 {
			fmt.Printf(", %d warning(s)", result.WarningCount)
		}
		fmt.Println()
		return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
	}

	return nil
}

// regenerateCommand reconstructs the invocation recorded in generated
// headers and the README so a later run reproduces this one.
func regenerateCommand(flags *GenerateFlags) string {
	parts := []string{"schematic", "generate"}
	if flags.All {
		parts = append(parts, "-all")
	} else {
		names := make([]string, 0, len(flags.APIs))
		for _, name := range flags.APIs {
			names = append(names, strings.ToLower(name))
		}
		sort.Strings(names)
		for _, name := range names {
			parts = append(parts, "-api", name)
		}
	}
	parts = append(parts, "-o", flags.Output)
	if flags.PackageName != "schema" {
		parts = append(parts, "-p", flags.PackageName)
	}
	if flags.NoReadme {
		parts = append(parts, "-no-readme")
	}
	if flags.NoDoc {
		parts = append(parts, "-no-doc")
	}
	return strings.Join(parts, " ")
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func definitionNames(defs []*define.API) string {
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return strings.Join(names, ", ")
}
