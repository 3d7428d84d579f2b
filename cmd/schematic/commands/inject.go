package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yankeeinlondon/schematic/codemod"
	"github.com/yankeeinlondon/schematic/generator"
	"github.com/yankeeinlondon/schematic/internal/cliutil"
	"github.com/yankeeinlondon/schematic/schemerrors"
)

// InjectFlags contains flags for the inject command
type InjectFlags struct {
	File         string
	Name         string
	Doc          string
	FragmentFile string
	PackageName  string
	DryRun       bool
}

// SetupInjectFlags creates and configures a FlagSet for the inject command.
// Returns the FlagSet and an InjectFlags struct with bound flag variables.
func SetupInjectFlags() (*flag.FlagSet, *InjectFlags) {
	fs := flag.NewFlagSet("inject", flag.ContinueOnError)
	flags := &InjectFlags{}

	fs.StringVar(&flags.File, "file", "", "target Go source file (required)")
	fs.StringVar(&flags.Name, "name", "", "enum type name to inject or replace (required)")
	fs.StringVar(&flags.Doc, "doc", "", "doc comment for the enum type")
	fs.StringVar(&flags.FragmentFile, "fragment-file", "", "file holding a pre-built enum fragment to inject verbatim")
	fs.StringVar(&flags.PackageName, "package", "schema", "package clause used when the target file must be created")
	fs.StringVar(&flags.PackageName, "p", "schema", "package clause used when the target file must be created")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "validate the mutation but write nothing")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematic inject [flags] [IDENT=value ...]\n\n")
		cliutil.Writef(fs.Output(), "Inject or replace an enum declaration in a Go source file.\n\n")
		cliutil.Writef(fs.Output(), "The enum is built from IDENT=value pairs, or taken verbatim from\n")
		cliutil.Writef(fs.Output(), "-fragment-file. Constants are prefixed with the type name, so\n")
		cliutil.Writef(fs.Output(), "'-name Voice Alloy=alloy' declares VoiceAlloy. The target file is\n")
		cliutil.Writef(fs.Output(), "parsed before and after the mutation and committed atomically.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematic inject -file schema/voice.go -name Voice Alloy=alloy Echo=echo\n")
		cliutil.Writef(fs.Output(), "  schematic inject -file schema/voice.go -name Voice -doc 'selects the voice.' Alloy=alloy\n")
		cliutil.Writef(fs.Output(), "  schematic inject -file schema/model.go -name Model -fragment-file model_enum.go.txt\n")
		cliutil.Writef(fs.Output(), "  schematic inject -file schema/voice.go -name Voice -dry-run Alloy=alloy\n")
	}

	return fs, flags
}

// HandleInject executes the inject command
func HandleInject(args []string) error {
	fs, flags := SetupInjectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.File == "" {
		fs.Usage()
		return fmt.Errorf("target file is required (use -file)")
	}
	if flags.Name == "" {
		fs.Usage()
		return fmt.Errorf("enum name is required (use -name)")
	}

	opts := []codemod.Option{codemod.WithPackageName(flags.PackageName)}
	if flags.DryRun {
		opts = append(opts, codemod.WithDryRun())
	}

	if flags.FragmentFile != "" {
		if fs.NArg() != 0 {
			fs.Usage()
			return fmt.Errorf("-fragment-file cannot be combined with IDENT=value pairs")
		}
		fragment, err := os.ReadFile(flags.FragmentFile)
		if err != nil {
			return fmt.Errorf("reading fragment file: %w", err)
		}
		if err := codemod.InjectEnum(flags.File, flags.Name, string(fragment), opts...); err != nil {
			return fmt.Errorf("injecting enum: %w", err)
		}
		reportInjected(flags)
		return nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("inject command requires IDENT=value pairs or -fragment-file")
	}

	values, err := parseEnumValues(flags.Name, fs.Args())
	if err != nil {
		return err
	}

	if err := generator.InjectEnum(flags.File, flags.Name, flags.Doc, values, opts...); err != nil {
		return fmt.Errorf("injecting enum: %w", err)
	}
	reportInjected(flags)
	return nil
}

// parseEnumValues turns positional IDENT=value arguments into enum values.
// Constants are conventionally prefixed with the enum type name, so the
// parsed ident gets typeName prepended (Alloy becomes VoiceAlloy). The
// value half may be empty; the identifier may not.
func parseEnumValues(typeName string, args []string) ([]generator.EnumValue, error) {
	values := make([]generator.EnumValue, 0, len(args))
	for _, arg := range args {
		ident, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, &schemerrors.ParseError{
				Input:   arg,
				Message: "expected IDENT=value",
			}
		}
		if ident == "" {
			return nil, &schemerrors.ParseError{
				Input:   arg,
				Message: "identifier cannot be empty",
			}
		}
		values = append(values, generator.EnumValue{Ident: typeName + ident, Value: value})
	}
	return values, nil
}

func reportInjected(flags *InjectFlags) {
	if flags.DryRun {
		fmt.Printf("Dry run: %s validated against %s, nothing written\n", flags.Name, flags.File)
		return
	}
	fmt.Printf("Injected %s into %s\n", flags.Name, flags.File)
}
