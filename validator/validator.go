package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/internal/issues"
	"github.com/yankeeinlondon/schematic/internal/severity"
	"github.com/yankeeinlondon/schematic/schemerrors"
)

// Severity is re-exported so callers don't need to import internal packages.
type Severity = severity.Severity

// Severity levels for issues found during validation.
const (
	SeverityError    = severity.SeverityError
	SeverityWarning  = severity.SeverityWarning
	SeverityInfo     = severity.SeverityInfo
	SeverityCritical = severity.SeverityCritical
)

// Issue is a single problem found in a definition.
type Issue = issues.Issue

// Result contains the outcome of validating one or more definitions.
type Result struct {
	// Valid is true if no errors or critical issues were found
	// (warnings are allowed)
	Valid bool
	// Definition is the name of the validated definition, or "all" for
	// a cross-definition run
	Definition string
	// Errors contains all error and critical issues
	Errors []Issue
	// Warnings contains all warning issues
	Warnings []Issue
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// Duration is the time taken to validate
	Duration time.Duration
}

// Err returns nil when the result is valid, otherwise a
// *schemerrors.ValidationError carrying the full formatted report.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	report := make([]string, 0, len(r.Errors))
	for _, issue := range r.Errors {
		report = append(report, issue.String())
	}
	return &schemerrors.ValidationError{
		Definition: r.Definition,
		Message:    "definition failed validation",
		Issues:     report,
	}
}

// finalize computes counts and validity after all checks have run.
func (r *Result) finalize(start time.Time) *Result {
	r.ErrorCount = len(r.Errors)
	r.WarningCount = len(r.Warnings)
	r.Valid = r.ErrorCount == 0
	r.Duration = time.Since(start)
	return r
}

// Validator checks API definitions. The zero value is ready to use.
type Validator struct{}

// New returns a Validator with default configuration.
func New() *Validator {
	return &Validator{}
}

// Validate checks a single definition with a default Validator.
func Validate(def *define.API) *Result {
	return New().Validate(def)
}

// ValidateAll checks multiple definitions with a default Validator,
// including cross-definition constraints.
func ValidateAll(defs ...*define.API) *Result {
	return New().ValidateAll(defs...)
}

// Validate runs every check against one definition and accumulates all
// issues found. It never stops at the first problem.
func (v *Validator) Validate(def *define.API) *Result {
	start := time.Now()
	result := &Result{Definition: def.Name}
	v.validateDefinition(def, result)
	return result.finalize(start)
}

// ValidateAll validates each definition independently and then applies
// cross-definition checks. All issues land in one combined result, with
// paths prefixed by the owning definition's name.
func (v *Validator) ValidateAll(defs ...*define.API) *Result {
	start := time.Now()
	result := &Result{Definition: "all"}
	for _, def := range defs {
		v.validateDefinition(def, result)
	}
	v.validateModuleSharing(defs, result)
	v.validateCrossDefinitionNames(defs, result)
	return result.finalize(start)
}

func (v *Validator) validateDefinition(def *define.API, result *Result) {
	base := defPath(def)

	if def.Name == "" {
		v.addError(result, base, "definition must have a name")
	} else if !isIdentifier(def.Name) {
		v.addError(result, base, "definition name must be a valid identifier",
			withField("name"), withValue(def.Name))
	}

	if def.BaseURL == "" {
		v.addError(result, base, "definition must have a base URL", withField("base_url"))
	} else if !strings.HasPrefix(def.BaseURL, "http://") && !strings.HasPrefix(def.BaseURL, "https://") {
		v.addWarning(result, base, "base URL does not use an http(s) scheme",
			withField("base_url"), withValue(def.BaseURL))
	}

	if def.DocsURL == "" {
		v.addWarning(result, base, "definition has no documentation URL", withField("docs_url"))
	}

	v.validateRequestSuffix(def, result)
	v.validateAuth(def, result)
	v.validateEndpoints(def, result)
	v.validateWrapperNames(def, result)
}

// validateRequestSuffix rejects suffixes that cannot produce valid exported
// Go type names.
func (v *Validator) validateRequestSuffix(def *define.API, result *Result) {
	suffix := def.EffectiveRequestSuffix()
	path := defPath(def) + ".request_suffix"

	if suffix == "" {
		v.addError(result, path, "request suffix must not be empty", withField("request_suffix"))
		return
	}
	for _, r := range suffix {
		if !isAlphanumeric(r) {
			v.addError(result, path,
				fmt.Sprintf("request suffix %q must contain only letters and digits", suffix),
				withField("request_suffix"), withValue(suffix))
			return
		}
	}
}

func (v *Validator) validateAuth(def *define.API, result *Result) {
	base := defPath(def) + ".auth"

	switch def.Auth.Kind {
	case define.AuthNone:
		return
	case define.AuthAPIKey:
		if def.Auth.Header == "" {
			v.addError(result, base, "api-key auth requires a header name", withField("header"))
		}
	case define.AuthBasic:
		if def.UsernameEnvVar == "" {
			v.addError(result, base, "basic auth requires a username environment variable",
				withField("username_env_var"))
		}
	}

	if len(def.CredentialEnvVars) == 0 {
		v.addError(result, base,
			"authenticated APIs must name at least one credential environment variable",
			withField("credential_env_vars"))
	}
}

func (v *Validator) validateEndpoints(def *define.API, result *Result) {
	if len(def.Endpoints) == 0 {
		v.addWarning(result, defPath(def)+".endpoints", "definition has no endpoints")
		return
	}

	seen := make(map[string]bool, len(def.Endpoints))
	for i := range def.Endpoints {
		ep := &def.Endpoints[i]
		path := endpointPath(def, ep, i)

		if ep.ID == "" {
			v.addError(result, path, "endpoint must have an id", withField("id"))
		} else if !isIdentifier(ep.ID) {
			v.addError(result, path, "endpoint id must be a valid identifier",
				withField("id"), withValue(ep.ID))
		} else if seen[ep.ID] {
			v.addError(result, path, fmt.Sprintf("duplicate endpoint id %q", ep.ID),
				withField("id"), withValue(ep.ID))
		}
		seen[ep.ID] = true

		if !ep.Method.Valid() {
			v.addError(result, path, fmt.Sprintf("unsupported HTTP method %q", string(ep.Method)),
				withField("method"), withValue(string(ep.Method)))
		}

		v.validateEndpointPath(ep, path, result)
		v.validateNamingCollision(def, ep, path, result)

		if ep.Request != nil && !ep.Method.AllowsBody() {
			v.addWarning(result, path,
				fmt.Sprintf("%s endpoints do not conventionally carry a request body", ep.Method))
		}
	}
}

// validateEndpointPath checks the path template: presence, leading slash,
// and well-formed, unique, identifier-shaped parameters.
func (v *Validator) validateEndpointPath(ep *define.Endpoint, path string, result *Result) {
	if ep.Path == "" {
		v.addError(result, path, "endpoint must have a path", withField("path"))
		return
	}
	if !strings.HasPrefix(ep.Path, "/") {
		v.addWarning(result, path, "endpoint path should start with '/'",
			withField("path"), withValue(ep.Path))
	}

	depth := 0
	var current strings.Builder
	seen := make(map[string]bool)
	for _, r := range ep.Path {
		switch r {
		case '{':
			depth++
			if depth > 1 {
				v.addError(result, path, "nested '{' in path template",
					withField("path"), withValue(ep.Path))
				return
			}
			current.Reset()
		case '}':
			if depth == 0 {
				v.addError(result, path, "unmatched '}' in path template",
					withField("path"), withValue(ep.Path))
				return
			}
			depth--
			name := current.String()
			if name == "" {
				v.addError(result, path, "empty path parameter '{}' in template",
					withField("path"), withValue(ep.Path))
				continue
			}
			if !isIdentifier(name) {
				v.addError(result, path,
					fmt.Sprintf("path parameter %q is not a valid identifier", name),
					withField("path"), withValue(name))
				continue
			}
			if seen[name] {
				v.addError(result, path,
					fmt.Sprintf("path parameter %q appears more than once", name),
					withField("path"), withValue(name))
			}
			seen[name] = true
		default:
			if depth == 1 {
				current.WriteRune(r)
			}
		}
	}
	if depth != 0 {
		v.addError(result, path, "unterminated '{' in path template",
			withField("path"), withValue(ep.Path))
	}
}

// validateNamingCollision rejects JSON body types named exactly like the
// wrapper the generator would synthesize for the endpoint, which would
// produce two identically named types in the output module.
func (v *Validator) validateNamingCollision(def *define.API, ep *define.Endpoint, path string, result *Result) {
	if !ep.Request.IsJSON() {
		return
	}
	schema := ep.Request.Schema
	if schema.ModulePath != "" {
		return
	}
	wrapper := def.WrapperName(*ep)
	if schema.TypeName != wrapper {
		return
	}

	suggestion := strings.TrimSuffix(schema.TypeName, def.EffectiveRequestSuffix()) + "Body"
	v.addError(result, path,
		fmt.Sprintf("request body type %q collides with the generated wrapper name", schema.TypeName),
		withField("request"), withValue(schema.TypeName),
		withSuggestion(fmt.Sprintf("rename the body type to %q", suggestion)))
}

// reservedGeneratedNames are the type names the shared runtime support
// file declares in every output package. No definition may synthesize
// another top-level type with one of these names.
var reservedGeneratedNames = map[string]bool{
	"RequestParts":           true,
	"StatusError":            true,
	"UnsupportedMethodError": true,
	"MissingCredentialError": true,
}

// validateWrapperNames rejects endpoint configurations whose generated
// wrapper type would collide with another name synthesized into the same
// package: the request union, the client struct, a shared runtime type, or
// another endpoint's wrapper. Duplicate declarations still parse, so this
// is the only gate keeping the output compilable.
func (v *Validator) validateWrapperNames(def *define.API, result *Result) {
	union := def.UnionName()
	client := def.ClientName()
	owners := make(map[string]string, len(def.Endpoints))

	for i := range def.Endpoints {
		ep := &def.Endpoints[i]
		if ep.ID == "" || !isIdentifier(ep.ID) {
			continue
		}
		path := endpointPath(def, ep, i)
		wrapper := def.WrapperName(*ep)

		switch {
		case wrapper == union:
			v.addError(result, path,
				fmt.Sprintf("generated wrapper %q collides with the request union type", wrapper),
				withField("id"), withValue(ep.ID),
				withSuggestion("rename the endpoint id or set a different request_suffix"))
		case wrapper == client:
			v.addError(result, path,
				fmt.Sprintf("generated wrapper %q collides with the client type", wrapper),
				withField("id"), withValue(ep.ID),
				withSuggestion("rename the endpoint id or set a different request_suffix"))
		case reservedGeneratedNames[wrapper]:
			v.addError(result, path,
				fmt.Sprintf("generated wrapper %q is reserved for shared runtime support", wrapper),
				withField("id"), withValue(ep.ID),
				withSuggestion("rename the endpoint id"))
		case owners[wrapper] != "" && owners[wrapper] != ep.ID:
			v.addError(result, path,
				fmt.Sprintf("generated wrapper %q collides with the wrapper for endpoint %q", wrapper, owners[wrapper]),
				withField("id"), withValue(ep.ID),
				withSuggestion("endpoint ids must stay distinct after export-casing"))
		}
		if owners[wrapper] == "" {
			owners[wrapper] = ep.ID
		}
	}
}

// validateCrossDefinitionNames enforces that generated top-level names are
// unique across a whole run. Every generated file lands in one package, so
// a client, union, or wrapper name reused by another definition produces
// duplicate declarations regardless of how modules are laid out.
func (v *Validator) validateCrossDefinitionNames(defs []*define.API, result *Result) {
	seenDefs := make(map[string]bool, len(defs))
	owners := make(map[string]string)

	claim := func(name, owner, kind string) {
		if name == "" {
			return
		}
		prev, taken := owners[name]
		if !taken {
			owners[name] = owner
			return
		}
		if prev == owner {
			// within-definition collisions are reported per definition
			return
		}
		v.addCritical(result, "all",
			fmt.Sprintf("definitions %s and %s both generate a top-level %s named %q",
				prev, owner, kind, name),
			withField("name"), withValue(name),
			withSuggestion("rename one definition's endpoints or change its request_suffix"))
	}

	for _, def := range defs {
		if def.Name == "" {
			continue
		}
		if seenDefs[def.Name] {
			v.addCritical(result, "all",
				fmt.Sprintf("duplicate definition name %q", def.Name),
				withField("name"), withValue(def.Name))
			continue
		}
		seenDefs[def.Name] = true

		claim(def.ClientName(), def.Name, "client type")
		claim(def.UnionName(), def.Name, "request union")
		for i := range def.Endpoints {
			ep := &def.Endpoints[i]
			if ep.ID == "" || !isIdentifier(ep.ID) {
				continue
			}
			claim(def.WrapperName(*ep), def.Name, "wrapper type")
		}
	}
}

// validateModuleSharing enforces that definitions only share an output
// module deliberately: every member of a shared module must carry the same
// explicit module path. A collision of defaulted (lowercased-name) paths or
// a mix of explicit and defaulted paths is a configuration error.
func (v *Validator) validateModuleSharing(defs []*define.API, result *Result) {
	byModule := make(map[string][]*define.API)
	for _, def := range defs {
		key := def.EffectiveModulePath()
		byModule[key] = append(byModule[key], def)
	}

	for module, members := range byModule {
		if len(members) < 2 {
			continue
		}
		allExplicit := true
		for _, def := range members {
			if def.ModulePath == "" {
				allExplicit = false
				break
			}
		}
		if allExplicit {
			continue
		}
		names := make([]string, len(members))
		for i, def := range members {
			names[i] = def.Name
		}
		v.addCritical(result, "all",
			fmt.Sprintf("definitions %s resolve to the same output module %q without all declaring it explicitly; set module_path on each",
				strings.Join(names, ", "), module),
			withField("module_path"), withValue(module))
	}
}

func defPath(def *define.API) string {
	if def.Name == "" {
		return "(unnamed)"
	}
	return strings.ToLower(def.Name)
}

func endpointPath(def *define.API, ep *define.Endpoint, index int) string {
	if ep.ID == "" {
		return fmt.Sprintf("%s.endpoints[%d]", defPath(def), index)
	}
	return fmt.Sprintf("%s.endpoints.%s", defPath(def), ep.ID)
}

// addError appends an error-severity issue.
func (v *Validator) addError(result *Result, path, message string, opts ...func(*Issue)) {
	issue := Issue{Path: path, Message: message, Severity: SeverityError}
	for _, opt := range opts {
		opt(&issue)
	}
	result.Errors = append(result.Errors, issue)
}

// addCritical appends a critical-severity issue.
func (v *Validator) addCritical(result *Result, path, message string, opts ...func(*Issue)) {
	issue := Issue{Path: path, Message: message, Severity: SeverityCritical}
	for _, opt := range opts {
		opt(&issue)
	}
	result.Errors = append(result.Errors, issue)
}

// addWarning appends a warning-severity issue.
func (v *Validator) addWarning(result *Result, path, message string, opts ...func(*Issue)) {
	issue := Issue{Path: path, Message: message, Severity: SeverityWarning}
	for _, opt := range opts {
		opt(&issue)
	}
	result.Warnings = append(result.Warnings, issue)
}

// withField sets the Field on an Issue.
func withField(field string) func(*Issue) {
	return func(i *Issue) { i.Field = field }
}

// withValue sets the Value on an Issue.
func withValue(value any) func(*Issue) {
	return func(i *Issue) { i.Value = value }
}

// withSuggestion sets the Suggestion on an Issue.
func withSuggestion(s string) func(*Issue) {
	return func(i *Issue) { i.Suggestion = s }
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isIdentifier reports whether s is a letter or underscore followed by
// letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		if i == 0 {
			if !isLetter {
				return false
			}
			continue
		}
		if !isLetter && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
