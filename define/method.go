package define

import (
	"fmt"
	"strings"
)

// Method is an HTTP request method supported by endpoint definitions.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods returns all supported HTTP methods in declaration order.
func Methods() []Method {
	return []Method{
		MethodGet,
		MethodPost,
		MethodPut,
		MethodPatch,
		MethodDelete,
		MethodHead,
		MethodOptions,
	}
}

// ParseMethod parses a method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodHead, MethodOptions:
		return m, nil
	}
	return "", fmt.Errorf("unsupported HTTP method: %q", s)
}

// String returns the uppercase method name.
func (m Method) String() string {
	return string(m)
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	_, err := ParseMethod(string(m))
	return err == nil
}

// AllowsBody reports whether the method conventionally carries a request body.
func (m Method) AllowsBody() bool {
	switch m {
	case MethodPost, MethodPut, MethodPatch, MethodDelete:
		return true
	default:
		return false
	}
}
