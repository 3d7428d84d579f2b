package define

import "strings"

// DefaultRequestSuffix is appended to endpoint IDs to name generated
// request wrapper types when no explicit suffix is configured.
const DefaultRequestSuffix = "Request"

// Header is a single HTTP header applied to requests.
type Header struct {
	Name  string
	Value string
}

// API is a complete declarative definition of an HTTP API.
//
// The generator turns one API value into a typed client: request wrapper
// structs, a sealed request union, and a client struct with credential
// resolution and exactly the dispatch methods the response shapes require.
type API struct {
	// Name identifies the API and becomes the generated client type name.
	// Should be PascalCase (e.g., "OpenAI", "ElevenLabs").
	Name string
	// Description documents the API in generated code.
	Description string
	// BaseURL is the default scheme+host+prefix requests are sent to.
	BaseURL string
	// DocsURL links to upstream API documentation (optional).
	DocsURL string
	// Auth selects the authentication strategy.
	Auth AuthStrategy
	// CredentialEnvVars is the ordered fallback chain of environment
	// variables consulted for the credential; the first one set wins.
	CredentialEnvVars []string
	// UsernameEnvVar names the environment variable holding the basic-auth
	// username (AuthBasic only; the password comes from CredentialEnvVars).
	UsernameEnvVar string
	// Headers are applied to every request. Endpoint headers override
	// these on name conflicts (case-insensitive).
	Headers []Header
	// Endpoints lists every operation the API exposes.
	Endpoints []Endpoint
	// ModulePath overrides the output module identifier. When empty the
	// lowercased Name is used. Two definitions may share one output module
	// only by both setting the same explicit ModulePath.
	ModulePath string
	// RequestSuffix overrides DefaultRequestSuffix for wrapper type names.
	RequestSuffix string
}

// Endpoint is a single operation of an API.
type Endpoint struct {
	// ID identifies the endpoint and names its generated wrapper type.
	// Should be PascalCase (e.g., "ChatCompletion").
	ID string
	// Method is the HTTP method.
	Method Method
	// Path is the path template, with parameters in curly braces
	// (e.g., "/users/{user_id}/posts/{post_id}").
	Path string
	// Description documents the endpoint in generated code.
	Description string
	// Request is the request payload shape; nil for bodyless endpoints.
	Request *Request
	// Response is the success payload shape.
	Response Response
	// Headers are endpoint-specific headers; they override API headers
	// on name conflicts (case-insensitive).
	Headers []Header
}

// EffectiveRequestSuffix returns the configured request suffix or the
// default when none is set.
func (a *API) EffectiveRequestSuffix() string {
	if a.RequestSuffix != "" {
		return a.RequestSuffix
	}
	return DefaultRequestSuffix
}

// EffectiveModulePath returns the output module identifier: the explicit
// ModulePath when set, otherwise the lowercased API name.
func (a *API) EffectiveModulePath() string {
	if a.ModulePath != "" {
		return a.ModulePath
	}
	return strings.ToLower(a.Name)
}

// WrapperName returns the generated request wrapper type name for an
// endpoint: the exported endpoint ID plus the effective request suffix.
func (a *API) WrapperName(ep Endpoint) string {
	return ExportedIdent(ep.ID) + a.EffectiveRequestSuffix()
}

// UnionName returns the name of the generated request union type.
func (a *API) UnionName() string {
	return ExportedIdent(a.Name) + "Request"
}

// ClientName returns the name of the generated client struct.
func (a *API) ClientName() string {
	return ExportedIdent(a.Name)
}

// MergedHeaders returns the headers to send for an endpoint: API-level
// headers with endpoint-level values overriding on case-insensitive name
// match, endpoint-only headers appended in declaration order.
func (a *API) MergedHeaders(ep Endpoint) []Header {
	merged := make([]Header, 0, len(a.Headers)+len(ep.Headers))
	merged = append(merged, a.Headers...)
	for _, h := range ep.Headers {
		replaced := false
		for i := range merged {
			if strings.EqualFold(merged[i].Name, h.Name) {
				merged[i] = h
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, h)
		}
	}
	return merged
}

// ExportedIdent uppercases the first byte of an identifier so it is
// exported in generated code. It does not otherwise rewrite the name;
// endpoint IDs and API names are expected to already be PascalCase.
func ExportedIdent(name string) string {
	if name == "" {
		return name
	}
	if name[0] >= 'a' && name[0] <= 'z' {
		return string(name[0]-('a'-'A')) + name[1:]
	}
	return name
}
