package catalog

import (
	"sort"
	"strings"

	"github.com/yankeeinlondon/schematic/define"
)

// builders maps catalog identifiers to their definition constructors.
var builders = map[string]func() *define.API{
	"openai":     OpenAI,
	"anthropic":  Anthropic,
	"elevenlabs": ElevenLabs,
}

// Names returns the catalog identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh definition for the given identifier. Matching is
// case-insensitive.
func Lookup(name string) (*define.API, bool) {
	build, ok := builders[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return build(), true
}

// All returns every REST API definition in the catalog, in sorted name order.
func All() []*define.API {
	defs := make([]*define.API, 0, len(builders))
	for _, name := range Names() {
		defs = append(defs, builders[name]())
	}
	return defs
}
