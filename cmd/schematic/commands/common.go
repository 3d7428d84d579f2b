// Package commands provides CLI command handlers for schematic.
package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/yankeeinlondon/schematic/catalog"
	"github.com/yankeeinlondon/schematic/define"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// apiList collects repeated -api flag values.
type apiList []string

func (l *apiList) String() string { return strings.Join(*l, ",") }

func (l *apiList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// resolveDefinitions maps -api flag values to catalog definitions. An empty
// list with all=true selects the whole catalog; names are case-insensitive.
func resolveDefinitions(names []string, all bool) ([]*define.API, error) {
	if all {
		if len(names) > 0 {
			return nil, fmt.Errorf("-all cannot be combined with -api")
		}
		return catalog.All(), nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no definitions selected: pass -api <name> or -all (catalog: %s)", strings.Join(catalog.Names(), ", "))
	}
	seen := make(map[string]bool, len(names))
	defs := make([]*define.API, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		def, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown API %q: catalog has %s", name, strings.Join(catalog.Names(), ", "))
		}
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}
