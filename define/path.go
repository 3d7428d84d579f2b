package define

import (
	"fmt"
	"strings"
)

// PathParams extracts parameter names from a path template in order of
// appearance. Malformed templates (unterminated or empty braces) yield the
// parameters that could be extracted; the validator reports the defects.
func PathParams(path string) []string {
	var params []string
	for i := 0; i < len(path); {
		open := strings.IndexByte(path[i:], '{')
		if open < 0 {
			break
		}
		open += i
		close := strings.IndexByte(path[open:], '}')
		if close < 0 {
			break
		}
		close += open
		if name := path[open+1 : close]; name != "" {
			params = append(params, name)
		}
		i = close + 1
	}
	return params
}

// SubstitutePathParams replaces each {param} in the template with its value.
// Every parameter in the template must have a value.
func SubstitutePathParams(path string, values map[string]string) (string, error) {
	result := path
	for _, name := range PathParams(path) {
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("missing value for path parameter %q in %q", name, path)
		}
		result = strings.ReplaceAll(result, "{"+name+"}", v)
	}
	return result, nil
}
