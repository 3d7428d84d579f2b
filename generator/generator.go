package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	schematic "github.com/yankeeinlondon/schematic"
	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/internal/issues"
	"github.com/yankeeinlondon/schematic/internal/severity"
	"github.com/yankeeinlondon/schematic/schemerrors"
	"github.com/yankeeinlondon/schematic/validator"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates features that may not generate perfectly
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates validation errors
	SeverityError = severity.SeverityError
	// SeverityCritical indicates features that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "shared.go", "openai.go", "README.md")
	Name string
	// Content is the generated file content
	Content []byte
}

// GenerateResult contains the results of generating client code from
// API definitions
type GenerateResult struct {
	// Files contains all generated files in write order
	Files []GeneratedFile
	// PackageName is the Go package name used in generation
	PackageName string
	// DryRun is true when the result should validate but not commit writes
	DryRun bool
	// Issues contains all validation and generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of errors
	ErrorCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without errors or critical issues
	Success bool
	// ValidateTime is the time taken to validate the definitions
	ValidateTime time.Duration
	// GenerateTime is the time taken to synthesize and assemble code
	GenerateTime time.Duration
	// GeneratedClients is the count of client types generated
	GeneratedClients int
	// GeneratedWrappers is the count of request wrapper types generated
	GeneratedWrappers int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles client code generation from API definitions
type Generator struct {
	// PackageName is the Go package name for generated code
	// If empty, defaults to "schema"
	PackageName string

	// GenerateReadme enables README.md generation in the output directory.
	// The README includes regeneration commands, file listing, and the
	// credential chains of each API.
	// Default: true
	GenerateReadme bool

	// GenerateDoc enables the package documentation file (doc.go).
	// Default: true
	GenerateDoc bool

	// DryRun runs every stage including per-file validation but marks the
	// result so WriteFiles skips the final commit.
	DryRun bool

	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// Command is the regeneration command recorded in the README
	Command string

	// OutputDir is the directory recorded in the README manifest. WriteFiles
	// takes the directory explicitly; this only affects reporting.
	OutputDir string

	// Logger receives generation progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		PackageName:    "schema",
		GenerateReadme: true,
		GenerateDoc:    true,
		DryRun:         false,
		StrictMode:     false,
		IncludeInfo:    true,
		Command:        "schematic generate -all -o .",
	}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	definitions []*define.API

	packageName    string
	outputDir      string
	generateReadme bool
	generateDoc    bool
	dryRun         bool
	strictMode     bool
	includeInfo    bool
	command        string
	logger         *slog.Logger
}

// WithDefinitions sets the API definitions to generate clients for.
func WithDefinitions(defs ...*define.API) Option {
	return func(cfg *generateConfig) error {
		if len(defs) == 0 {
			return fmt.Errorf("at least one definition is required")
		}
		cfg.definitions = append(cfg.definitions, defs...)
		return nil
	}
}

// WithOutputDir records the output directory (used in the README manifest).
// WriteFiles takes the directory explicitly; this only affects reporting.
func WithOutputDir(dir string) Option {
	return func(cfg *generateConfig) error {
		cfg.outputDir = dir
		return nil
	}
}

// WithPackageName sets the Go package name for generated code.
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("package name cannot be empty")
		}
		cfg.packageName = name
		return nil
	}
}

// WithReadme enables or disables README.md generation.
func WithReadme(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateReadme = enabled
		return nil
	}
}

// WithDoc enables or disables doc.go generation.
func WithDoc(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateDoc = enabled
		return nil
	}
}

// WithDryRun marks the result so WriteFiles validates without committing.
func WithDryRun(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.dryRun = enabled
		return nil
	}
}

// WithStrictMode causes generation to fail on warnings.
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo includes informational issues in the result.
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithCommand records the regeneration command shown in the README.
func WithCommand(command string) Option {
	return func(cfg *generateConfig) error {
		cfg.command = command
		return nil
	}
}

// WithLogger sets the logger for generation progress.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = logger
		return nil
	}
}

func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName:    "schema",
		generateReadme: true,
		generateDoc:    true,
		includeInfo:    true,
		command:        "schematic generate -all -o .",
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if len(cfg.definitions) == 0 {
		return nil, fmt.Errorf("no definitions provided: use WithDefinitions")
	}
	return cfg, nil
}

// GenerateWithOptions generates client code from API definitions using
// functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithDefinitions(catalog.OpenAI(), catalog.Anthropic()),
//	    generator.WithPackageName("clients"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		PackageName:    cfg.packageName,
		GenerateReadme: cfg.generateReadme,
		GenerateDoc:    cfg.generateDoc,
		DryRun:         cfg.dryRun,
		StrictMode:     cfg.strictMode,
		IncludeInfo:    cfg.includeInfo,
		Command:        cfg.command,
		OutputDir:      cfg.outputDir,
		Logger:         cfg.logger,
	}
	return g.Generate(cfg.definitions...)
}

// GenerateAll runs an independent pipeline per definition, concurrently.
// A definition that fails validation or generation does not stop its
// siblings; results are returned in definition order and the per-definition
// errors are joined. A nil result slot marks a definition whose pipeline
// never produced a result.
func (g *Generator) GenerateAll(defs ...*define.API) ([]*GenerateResult, error) {
	results := make([]*GenerateResult, len(defs))
	errs := make([]error, len(defs))

	var wg sync.WaitGroup
	for i, def := range defs {
		wg.Add(1)
		go func(i int, def *define.API) {
			defer wg.Done()
			results[i], errs[i] = g.Generate(def)
		}(i, def)
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

// Generate validates the definitions and synthesizes one output package:
// a package doc file, the shared runtime support file, one source file per
// output module, and the README manifest.
//
// Definitions that share an explicit module path land in one file. Each
// definition's code is rendered independently (and concurrently); assembly
// and formatting happen per output file.
func (g *Generator) Generate(defs ...*define.API) (*GenerateResult, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	packageName := g.PackageName
	if packageName == "" {
		packageName = "schema"
	}
	tool := "schematic " + schematic.Version()

	result := &GenerateResult{
		PackageName: packageName,
		DryRun:      g.DryRun,
	}

	// Stage 1: validate everything, accumulate every issue.
	validateStart := time.Now()
	vres := validator.ValidateAll(defs...)
	result.ValidateTime = time.Since(validateStart)
	result.Issues = append(result.Issues, vres.Errors...)
	if g.IncludeInfo || g.StrictMode {
		result.Issues = append(result.Issues, vres.Warnings...)
	}
	g.updateCounts(result)
	if !vres.Valid {
		result.Success = false
		return result, vres.Err()
	}
	if g.StrictMode && vres.WarningCount > 0 {
		result.Success = false
		report := make([]string, 0, len(vres.Warnings))
		for _, w := range vres.Warnings {
			report = append(report, w.String())
		}
		return result, &schemerrors.ValidationError{
			Message: "strict mode: definitions have warnings",
			Issues:  report,
		}
	}

	generateStart := time.Now()

	// Stage 2: synthesize one chunk per definition, concurrently.
	chunks := make([][]byte, len(defs))
	errs := make([]error, len(defs))
	var wg sync.WaitGroup
	for i, def := range defs {
		wg.Add(1)
		go func(i int, def *define.API) {
			defer wg.Done()
			chunks[i], errs[i] = executeTemplate("api", buildAPIData(def), len(def.Endpoints))
		}(i, def)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return result, fmt.Errorf("rendering %s: %w", defs[i].Name, err)
		}
	}

	// Stage 3: assemble files: doc.go, shared.go, one file per module.
	if g.GenerateDoc {
		doc, err := executeTemplate("doc", buildDocData(packageName, tool, defs), 0)
		if err != nil {
			return result, fmt.Errorf("rendering package doc: %w", err)
		}
		g.appendFormatted(result, "doc.go", doc)
	}

	shared, err := executeTemplate("shared", sharedData{PackageName: packageName, Tool: tool}, 0)
	if err != nil {
		return result, fmt.Errorf("rendering shared support: %w", err)
	}
	g.appendFormatted(result, "shared.go", shared)

	byModule := make(map[string][]int)
	for i, def := range defs {
		module := def.EffectiveModulePath()
		byModule[module] = append(byModule[module], i)
	}
	modules := make([]string, 0, len(byModule))
	for module := range byModule {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	for _, module := range modules {
		endpoints := 0
		for _, i := range byModule[module] {
			endpoints += len(defs[i].Endpoints)
		}
		file := assembleModuleFile(packageName, tool, byModule[module], chunks, endpoints)
		g.appendFormatted(result, moduleFileName(module), file)
	}

	// Stage 4: the manifest artifact.
	if g.GenerateReadme {
		names := make([]string, 0, len(result.Files)+1)
		for _, f := range result.Files {
			names = append(names, f.Name)
		}
		names = append(names, "README.md")
		readme, err := executeTemplate("readme",
			buildReadmeData(packageName, g.OutputDir, g.Command, tool, names, defs), 0)
		if err != nil {
			return result, fmt.Errorf("rendering README: %w", err)
		}
		result.Files = append(result.Files, GeneratedFile{Name: "README.md", Content: readme})
	}

	result.GenerateTime = time.Since(generateStart)
	result.GeneratedClients = len(defs)
	for _, def := range defs {
		result.GeneratedWrappers += len(def.Endpoints)
	}
	g.updateCounts(result)
	result.Success = result.ErrorCount == 0 && result.CriticalCount == 0 &&
		(!g.StrictMode || result.WarningCount == 0)

	logger.Debug("generation complete",
		"clients", result.GeneratedClients,
		"wrappers", result.GeneratedWrappers,
		"files", len(result.Files))
	return result, nil
}

// assembleModuleFile concatenates the chunks of one output module under a
// single package clause. Import resolution happens during formatting.
func assembleModuleFile(packageName, tool string, indices []int, chunks [][]byte, endpointCount int) []byte {
	buf := getTemplateBuffer(endpointCount)
	defer putTemplateBuffer(buf, endpointCount)

	fmt.Fprintf(buf, "// Code generated by %s. DO NOT EDIT.\n\npackage %s\n\n", tool, packageName)
	for n, i := range indices {
		if n > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(chunks[i])
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// appendFormatted formats a Go file and appends it to the result. A
// formatting failure marks the file critical but keeps the raw content so
// the problem can be inspected.
func (g *Generator) appendFormatted(result *GenerateResult, name string, content []byte) {
	formatted, err := formatAndFixImports(name, content)
	if err != nil {
		result.Issues = append(result.Issues, GenerateIssue{
			Path:     name,
			Message:  fmt.Sprintf("generated content failed formatting: %v", err),
			Severity: SeverityCritical,
			File:     name,
		})
		result.Files = append(result.Files, GeneratedFile{Name: name, Content: content})
		return
	}
	result.Files = append(result.Files, GeneratedFile{Name: name, Content: formatted})
}

// updateCounts recomputes the per-severity counters from Issues.
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.ErrorCount = 0
	result.CriticalCount = 0
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError:
			result.ErrorCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}
