package generator

// Data structures passed to the code templates. Builders in
// template_builders.go populate them from definitions; templates stay
// declarative and do no name derivation of their own.

// sharedData feeds shared.tmpl, emitted once per output package.
type sharedData struct {
	// PackageName is the Go package of the output directory
	PackageName string
	// Tool identifies the generator in the file header
	Tool string
}

// docData feeds doc.tmpl, the package documentation file.
type docData struct {
	PackageName string
	Tool        string
	// Clients lists the generated client type names with their descriptions
	Clients []clientSummary
}

type clientSummary struct {
	Name        string
	Description string
	BaseURL     string
	DocsURL     string
}

// apiData feeds api.tmpl: everything needed to render one API's client,
// wrappers, request union, and dispatch methods.
type apiData struct {
	// Name is the exported client type name (e.g., "OpenAI")
	Name string
	// Description documents the client type
	Description string
	// DocsURL links to upstream documentation (may be empty)
	DocsURL string
	// BaseURL is the default base URL
	BaseURL string
	// BaseURLConst is the name of the emitted base-URL constant
	BaseURLConst string
	// UnionName is the sealed request interface name (e.g., "OpenAIRequest")
	UnionName string
	// JSONFunc is the generic JSON dispatch function name (e.g., "DoOpenAIJSON")
	JSONFunc string
	// Auth describes credential resolution for the constructors
	Auth authData
	// Endpoints lists every endpoint in declaration order
	Endpoints []endpointData
	// Dispatch-variant usage; each true value emits one dispatch member
	UsesJSON   bool
	UsesText   bool
	UsesBinary bool
	UsesEmpty  bool
}

// authData describes the credential setup emitted into constructors.
type authData struct {
	// Kind is one of "none", "bearer", "apikey", "basic"
	Kind string
	// HeaderName is the header the credential is sent in ("" for none/basic)
	HeaderName string
	// CredentialEnvVars is the ordered fallback chain
	CredentialEnvVars []string
	// CredentialList is the chain rendered as a Go string-slice body
	// (e.g., `"OPENAI_API_KEY", "OPENAI_KEY"`)
	CredentialList string
	// UsernameEnvVar holds the basic-auth username variable ("basic" only)
	UsernameEnvVar string
}

// endpointData describes one endpoint's wrapper and dispatch wiring.
type endpointData struct {
	// ID is the exported endpoint identifier (e.g., "ChatCompletion")
	ID string
	// WrapperName is the request wrapper type name (e.g., "ChatCompletionRequest")
	WrapperName string
	// Description is the cleaned endpoint description
	Description string
	// Method is the HTTP method (e.g., "POST")
	Method string
	// MethodConst is the net/http constant expression (e.g., "http.MethodPost")
	MethodConst string
	// Path is the path template
	Path string
	// PathParams lists template parameters in order of appearance
	PathParams []paramData
	// Request describes the body; nil for bodyless endpoints
	Request *requestData
	// Response describes the success payload
	Response responseData
	// Headers are the merged API+endpoint headers in final order
	Headers []headerData
	// CtorParams is the constructor parameter list
	// (e.g., "userID string, body ChatBody")
	CtorParams string
	// CtorAssigns is the matching composite-literal body
	// (e.g., "UserID: userID, Body: body")
	CtorAssigns string
	// Convenience is true when a typed convenience method is emitted
	// (non-JSON responses; JSON goes through the generic dispatch function)
	Convenience bool
}

// paramData maps one path parameter to its generated names.
type paramData struct {
	// Wire is the name inside the braces (e.g., "user_id")
	Wire string
	// Field is the wrapper struct field name (e.g., "UserID")
	Field string
	// Param is the constructor parameter name (e.g., "userID")
	Param string
	// Description documents the field (may be empty)
	Description string
}

type headerData struct {
	Name  string
	Value string
}

// requestData describes a request body shape.
type requestData struct {
	// Kind is one of "json", "formdata", "urlencoded", "text", "binary"
	Kind string
	// BodyType is the qualified body type for "json"
	BodyType string
	// ContentType is the MIME type for "text" and "binary"
	ContentType string
	// Fields lists form fields for "formdata" and "urlencoded"
	Fields []fieldData
}

// fieldData describes one form field of a request body.
type fieldData struct {
	// Wire is the field name on the wire
	Wire string
	// Field is the wrapper struct field name
	Field string
	// Kind is one of "text", "file", "files", "json"
	Kind string
	// GoType is the wrapper struct field type
	GoType string
	// Required is false for optional fields (omitted when zero)
	Required bool
	// Description documents the field
	Description string
	// Accept lists accepted MIME types for file fields
	Accept []string
	// MinFiles and MaxFiles constrain multi-file fields (0 = unconstrained)
	MinFiles int
	MaxFiles int
}

// responseData describes a response payload shape.
type responseData struct {
	// Kind is one of "json", "text", "binary", "empty"
	Kind string
	// Type is the qualified decoded type for "json"
	Type string
}

// readmeData feeds the README manifest artifact.
type readmeData struct {
	PackageName string
	OutputDir   string
	Command     string
	Tool        string
	Files       []string
	APIs        []readmeAPI
}

type readmeAPI struct {
	Name          string
	Description   string
	BaseURL       string
	DocsURL       string
	EndpointCount int
	AuthKind      string
	EnvVars       []string
}
