package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yankeeinlondon/schematic/define"
)

// methodConsts maps definition methods to net/http constant expressions.
var methodConsts = map[define.Method]string{
	define.MethodGet:     "http.MethodGet",
	define.MethodPost:    "http.MethodPost",
	define.MethodPut:     "http.MethodPut",
	define.MethodPatch:   "http.MethodPatch",
	define.MethodDelete:  "http.MethodDelete",
	define.MethodHead:    "http.MethodHead",
	define.MethodOptions: "http.MethodOptions",
}

// buildAPIData derives all names and dispatch wiring for one definition.
// The validator has already accepted the definition; builders trust it.
func buildAPIData(def *define.API) apiData {
	data := apiData{
		Name:         def.ClientName(),
		Description:  cleanDescription(def.Description),
		DocsURL:      def.DocsURL,
		BaseURL:      def.BaseURL,
		BaseURLConst: def.ClientName() + "BaseURL",
		UnionName:    def.UnionName(),
		JSONFunc:     "Do" + def.ClientName() + "JSON",
		Auth:         buildAuthData(def),
	}

	for _, ep := range def.Endpoints {
		epData := buildEndpointData(def, ep)
		switch epData.Response.Kind {
		case "json":
			data.UsesJSON = true
		case "text":
			data.UsesText = true
		case "binary":
			data.UsesBinary = true
		case "empty":
			data.UsesEmpty = true
		}
		data.Endpoints = append(data.Endpoints, epData)
	}
	return data
}

func buildAuthData(def *define.API) authData {
	quoted := make([]string, len(def.CredentialEnvVars))
	for i, v := range def.CredentialEnvVars {
		quoted[i] = strconv.Quote(v)
	}
	return authData{
		Kind:              def.Auth.Kind.String(),
		HeaderName:        def.Auth.HeaderName(),
		CredentialEnvVars: def.CredentialEnvVars,
		CredentialList:    strings.Join(quoted, ", "),
		UsernameEnvVar:    def.UsernameEnvVar,
	}
}

func buildEndpointData(def *define.API, ep define.Endpoint) endpointData {
	data := endpointData{
		ID:          define.ExportedIdent(ep.ID),
		WrapperName: def.WrapperName(ep),
		Description: cleanDescription(ep.Description),
		Method:      ep.Method.String(),
		MethodConst: methodConsts[ep.Method],
		Path:        ep.Path,
		Response:    buildResponseData(ep.Response),
	}

	for _, wire := range define.PathParams(ep.Path) {
		data.PathParams = append(data.PathParams, paramData{
			Wire:  wire,
			Field: toFieldName(wire),
			Param: toParamName(wire),
		})
	}

	if ep.Request != nil {
		data.Request = buildRequestData(ep.Request)
	}

	for _, h := range def.MergedHeaders(ep) {
		data.Headers = append(data.Headers, headerData{Name: h.Name, Value: h.Value})
	}

	data.CtorParams, data.CtorAssigns = buildCtor(data)
	data.Convenience = data.Response.Kind != "json"
	return data
}

// buildCtor derives the wrapper constructor signature: path parameters in
// template order, then the body for json/text/binary requests. Form fields
// are set on the struct directly.
func buildCtor(data endpointData) (params, assigns string) {
	var ps, as []string
	for _, p := range data.PathParams {
		ps = append(ps, p.Param+" string")
		as = append(as, p.Field+": "+p.Param)
	}
	if data.Request != nil {
		switch data.Request.Kind {
		case "json":
			ps = append(ps, "body "+data.Request.BodyType)
			as = append(as, "Body: body")
		case "text":
			ps = append(ps, "content string")
			as = append(as, "Content: content")
		case "binary":
			ps = append(ps, "content []byte")
			as = append(as, "Content: content")
		}
	}
	return strings.Join(ps, ", "), strings.Join(as, ", ")
}

func buildRequestData(req *define.Request) *requestData {
	data := &requestData{Kind: req.Kind.String()}
	switch req.Kind {
	case define.RequestJSON:
		data.BodyType = req.Schema.FullPath()
	case define.RequestText, define.RequestBinary:
		data.ContentType = req.ContentType
	case define.RequestFormData, define.RequestURLEncoded:
		for _, f := range req.Fields {
			data.Fields = append(data.Fields, buildFieldData(f))
		}
	}
	return data
}

func buildFieldData(f define.FormField) fieldData {
	data := fieldData{
		Wire:        f.Name,
		Field:       toFieldName(f.Name),
		Kind:        f.Kind.String(),
		Required:    f.Required,
		Description: cleanDescription(f.Description),
		Accept:      f.Accept,
		MinFiles:    f.MinFiles,
		MaxFiles:    f.MaxFiles,
	}
	switch f.Kind {
	case define.FieldText:
		data.GoType = "string"
	case define.FieldFile:
		data.GoType = "string"
		data.Field += "Path"
	case define.FieldFiles:
		data.GoType = "[]string"
		data.Field += "Paths"
	case define.FieldJSON:
		data.GoType = f.Schema.FullPath()
	}
	return data
}

func buildResponseData(resp define.Response) responseData {
	data := responseData{Kind: resp.Kind.String()}
	if resp.IsJSON() {
		data.Type = resp.Schema.FullPath()
	}
	return data
}

// buildDocData summarizes every definition for the package doc file.
func buildDocData(packageName, tool string, defs []*define.API) docData {
	data := docData{PackageName: packageName, Tool: tool}
	for _, def := range defs {
		data.Clients = append(data.Clients, clientSummary{
			Name:        def.ClientName(),
			Description: cleanDescription(def.Description),
			BaseURL:     def.BaseURL,
			DocsURL:     def.DocsURL,
		})
	}
	return data
}

// buildReadmeData summarizes a run for the README manifest.
func buildReadmeData(packageName, outputDir, command, tool string, files []string, defs []*define.API) readmeData {
	data := readmeData{
		PackageName: packageName,
		OutputDir:   outputDir,
		Command:     command,
		Tool:        tool,
		Files:       files,
	}
	for _, def := range defs {
		data.APIs = append(data.APIs, readmeAPI{
			Name:          def.Name,
			Description:   cleanDescription(def.Description),
			BaseURL:       def.BaseURL,
			DocsURL:       def.DocsURL,
			EndpointCount: len(def.Endpoints),
			AuthKind:      def.Auth.Kind.String(),
			EnvVars:       def.CredentialEnvVars,
		})
	}
	return data
}

// moduleFileName returns the output file name for a module identifier.
func moduleFileName(module string) string {
	return fmt.Sprintf("%s.go", module)
}
