package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/yankeeinlondon/schematic"
	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/internal/cliutil"
	"github.com/yankeeinlondon/schematic/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	APIs       apiList
	All        bool
	Strict     bool
	NoWarnings bool
	Quiet      bool
	Format     string
}

// validateReport is the structured form of a validation run for
// -format json|yaml output.
type validateReport struct {
	Valid        bool            `json:"valid" yaml:"valid"`
	Definitions  []string        `json:"definitions" yaml:"definitions"`
	ErrorCount   int             `json:"error_count" yaml:"error_count"`
	WarningCount int             `json:"warning_count" yaml:"warning_count"`
	Errors       []validateIssue `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Duration     time.Duration   `json:"duration_ns" yaml:"duration_ns"`
}

type validateIssue struct {
	Path       string `json:"path" yaml:"path"`
	Message    string `json:"message" yaml:"message"`
	Field      string `json:"field,omitempty" yaml:"field,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.Var(&flags.APIs, "api", "catalog API to validate (repeatable)")
	fs.BoolVar(&flags.All, "all", false, "validate every API in the catalog")
	fs.BoolVar(&flags.Strict, "strict", false, "treat warnings as errors")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress all output, exit code only")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress all output, exit code only")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematic validate [flags]\n\n")
		cliutil.Writef(fs.Output(), "Validate catalog API definitions and report issues.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematic validate -all\n")
		cliutil.Writef(fs.Output(), "  schematic validate -api elevenlabs -strict\n")
		cliutil.Writef(fs.Output(), "  schematic validate -all -format json\n")
		cliutil.Writef(fs.Output(), "\nExit codes:\n")
		cliutil.Writef(fs.Output(), "  0  all selected definitions are valid\n")
		cliutil.Writef(fs.Output(), "  1  validation failed (or warnings found with -strict)\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("validate command takes no positional arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		fs.Usage()
		return err
	}

	defs, err := resolveDefinitions(flags.APIs, flags.All)
	if err != nil {
		return err
	}

	result := validator.ValidateAll(defs...)

	passed := result.Valid
	if flags.Strict && result.WarningCount > 0 {
		passed = false
	}

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		report := buildValidateReport(result, defs, passed, flags.NoWarnings)
		if err := OutputStructured(report, flags.Format); err != nil {
			return err
		}
		if !passed {
			os.Exit(1)
		}
		return nil
	}

	// Text format output (always to stderr, stdout stays machine-clean)
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "API Definition Validator\n")
		cliutil.Writef(os.Stderr, "========================\n\n")
		cliutil.Writef(os.Stderr, "schematic version: %s\n", schematic.Version())
		cliutil.Writef(os.Stderr, "Definitions: %s\n", definitionNames(defs))
		cliutil.Writef(os.Stderr, "Duration: %v\n\n", result.Duration)

		if len(result.Errors) > 0 {
			cliutil.Writef(os.Stderr, "Errors (%d):\n", result.ErrorCount)
			for _, e := range result.Errors {
				cliutil.Writef(os.Stderr, "  %s\n", e.String())
			}
			cliutil.Writef(os.Stderr, "\n")
		}

		if len(result.Warnings) > 0 && !flags.NoWarnings {
			cliutil.Writef(os.Stderr, "Warnings (%d):\n", result.WarningCount)
			for _, warning := range result.Warnings {
				cliutil.Writef(os.Stderr, "  %s\n", warning.String())
			}
			cliutil.Writef(os.Stderr, "\n")
		}

		if passed {
			cliutil.Writef(os.Stderr, "✓ Validation passed")
			if result.WarningCount > 0 {
				cliutil.Writef(os.Stderr, " with %d warning(s)", result.WarningCount)
			}
			cliutil.Writef(os.Stderr, "\n")
		} else if result.Valid {
			cliutil.Writef(os.Stderr, "✗ Validation failed: %d warning(s) in strict mode\n", result.WarningCount)
		} else {
			cliutil.Writef(os.Stderr, "✗ Validation failed: %d error(s)", result.ErrorCount)
			if result.WarningCount > 0 {
				cliutil.Writef(os.Stderr, ", %d warning(s)", result.WarningCount)
			}
			cliutil.Writef(os.Stderr, "\n")
		}
	}

	if !passed {
		os.Exit(1)
	}

	return nil
}

func buildValidateReport(result *validator.Result, defs []*define.API, passed, noWarnings bool) validateReport {
	report := validateReport{
		Valid:        passed,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		Duration:     result.Duration,
	}
	for _, def := range defs {
		report.Definitions = append(report.Definitions, def.Name)
	}
	for _, issue := range result.Errors {
		report.Errors = append(report.Errors, toValidateIssue(issue))
	}
	if !noWarnings {
		for _, issue := range result.Warnings {
			report.Warnings = append(report.Warnings, toValidateIssue(issue))
		}
	}
	return report
}

func toValidateIssue(issue validator.Issue) validateIssue {
	return validateIssue{
		Path:       issue.Path,
		Message:    issue.Message,
		Field:      issue.Field,
		Suggestion: issue.Suggestion,
	}
}
