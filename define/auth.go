package define

// AuthKind identifies an authentication strategy.
type AuthKind int

const (
	// AuthNone means the API requires no authentication.
	AuthNone AuthKind = iota
	// AuthBearer sends "Bearer <token>" in a header (Authorization by default).
	AuthBearer
	// AuthAPIKey sends the raw credential in a named header.
	AuthAPIKey
	// AuthBasic sends HTTP basic auth built from a username and password.
	AuthBasic
)

// String returns the lowercase name of the auth kind.
func (k AuthKind) String() string {
	switch k {
	case AuthNone:
		return "none"
	case AuthBearer:
		return "bearer"
	case AuthAPIKey:
		return "apikey"
	case AuthBasic:
		return "basic"
	default:
		return "unknown"
	}
}

// AuthStrategy describes how generated clients authenticate requests.
//
// The credential material itself never appears in a definition; it is
// resolved from environment variables at client construction time using
// the API's CredentialEnvVars fallback chain.
type AuthStrategy struct {
	// Kind selects the strategy.
	Kind AuthKind
	// Header overrides the header name. Defaults to "Authorization" for
	// AuthBearer; required for AuthAPIKey (e.g., "xi-api-key").
	Header string
}

// NoAuth returns the strategy for unauthenticated APIs.
func NoAuth() AuthStrategy {
	return AuthStrategy{Kind: AuthNone}
}

// BearerAuth returns a bearer-token strategy using the Authorization header.
func BearerAuth() AuthStrategy {
	return AuthStrategy{Kind: AuthBearer}
}

// BearerAuthHeader returns a bearer-token strategy using a custom header.
func BearerAuthHeader(header string) AuthStrategy {
	return AuthStrategy{Kind: AuthBearer, Header: header}
}

// APIKeyAuth returns an API-key strategy sending the credential in header.
func APIKeyAuth(header string) AuthStrategy {
	return AuthStrategy{Kind: AuthAPIKey, Header: header}
}

// BasicAuth returns an HTTP basic-auth strategy.
func BasicAuth() AuthStrategy {
	return AuthStrategy{Kind: AuthBasic}
}

// HeaderName returns the header the credential is sent in, applying the
// Authorization default for bearer tokens. Returns "" for AuthNone and
// AuthBasic (basic auth uses the request's SetBasicAuth mechanism).
func (a AuthStrategy) HeaderName() string {
	switch a.Kind {
	case AuthBearer:
		if a.Header != "" {
			return a.Header
		}
		return "Authorization"
	case AuthAPIKey:
		return a.Header
	default:
		return ""
	}
}

// RequiresCredential reports whether clients need a credential at
// construction time.
func (a AuthStrategy) RequiresCredential() bool {
	return a.Kind != AuthNone
}
