package generator

import (
	"embed"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	// String manipulation
	"quote":     strconv.Quote,
	"join":      strings.Join,
	"upper":     strings.ToUpper,
	"lower":     strings.ToLower,
	"hasSuffix": strings.HasSuffix,
	"hasPrefix": strings.HasPrefix,

	// Custom helpers
	"cleanDesc":   cleanDescription,
	"toTypeName":  toTypeName,
	"toFieldName": toFieldName,
	"toParamName": toParamName,
}

// executeTemplate executes a template by name into a pooled buffer and
// returns its bytes. The output is a raw fragment; assembly formats the
// final concatenated file once (see assembleModuleFile).
func executeTemplate(name string, data any, endpointCount int) ([]byte, error) {
	buf := getTemplateBuffer(endpointCount)
	defer putTemplateBuffer(buf, endpointCount)

	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
