package define

import (
	"fmt"
	"strings"
)

// ParamType is the value type of a WebSocket connection parameter.
type ParamType int

const (
	// ParamString is a string parameter.
	ParamString ParamType = iota
	// ParamInteger is a signed 64-bit integer parameter.
	ParamInteger
	// ParamBoolean is a boolean parameter.
	ParamBoolean
	// ParamFloat is a 64-bit floating-point parameter.
	ParamFloat
)

// String returns the lowercase name of the parameter type.
func (t ParamType) String() string {
	switch t {
	case ParamString:
		return "string"
	case ParamInteger:
		return "integer"
	case ParamBoolean:
		return "boolean"
	case ParamFloat:
		return "float"
	default:
		return "unknown"
	}
}

// ParseParamType parses a lowercase parameter type name.
func ParseParamType(s string) (ParamType, error) {
	switch s {
	case "string":
		return ParamString, nil
	case "integer":
		return ParamInteger, nil
	case "boolean":
		return ParamBoolean, nil
	case "float":
		return ParamFloat, nil
	}
	return 0, fmt.Errorf("unsupported parameter type: %q", s)
}

// MessageDirection is the flow direction of a WebSocket message.
type MessageDirection int

const (
	// DirectionClient messages are sent from client to server.
	DirectionClient MessageDirection = iota
	// DirectionServer messages are sent from server to client.
	DirectionServer
	// DirectionBidirectional messages flow either way.
	DirectionBidirectional
)

// String returns the lowercase name of the direction.
func (d MessageDirection) String() string {
	switch d {
	case DirectionClient:
		return "client"
	case DirectionServer:
		return "server"
	case DirectionBidirectional:
		return "bidirectional"
	default:
		return "unknown"
	}
}

// ConnectionParam is a query or path parameter used when establishing a
// WebSocket connection.
type ConnectionParam struct {
	// Name is the wire name of the parameter.
	Name string
	// Type is the parameter's value type.
	Type ParamType
	// Required reports whether the connection needs the parameter.
	Required bool
	// Description documents the parameter in generated code.
	Description string
}

// MessageSchema defines one message type flowing over a connection.
type MessageSchema struct {
	// Name names the message (used for generated union variants).
	Name string
	// Direction is the flow direction of the message.
	Direction MessageDirection
	// Schema is the typed payload of the message.
	Schema Schema
	// Description documents the message in generated code.
	Description string
}

// ConnectionLifecycle holds optional messages with connection-management
// semantics, kept separate from regular messages.
type ConnectionLifecycle struct {
	// Open is sent when the connection is established.
	Open *MessageSchema
	// Close is sent before closing the connection.
	Close *MessageSchema
	// Keepalive is the heartbeat message, when the API requires one.
	Keepalive *MessageSchema
}

// WebSocketEndpoint defines one WebSocket endpoint: its path template,
// connection parameters, lifecycle messages, and message schemas.
type WebSocketEndpoint struct {
	// ID identifies the endpoint. Should be PascalCase.
	ID string
	// Path is the path template, with parameters in curly braces.
	Path string
	// Description documents the endpoint in generated code.
	Description string
	// ConnectionParams are query parameters for establishing the connection.
	ConnectionParams []ConnectionParam
	// Lifecycle holds open/close/keepalive messages.
	Lifecycle ConnectionLifecycle
	// Messages lists the regular messages exchanged on the connection.
	Messages []MessageSchema
}

// WebSocketAPI is a complete declarative definition of a WebSocket API.
// It reuses AuthStrategy and the credential fallback chain semantics of API.
type WebSocketAPI struct {
	// Name identifies the API and names the generated client.
	Name string
	// Description documents the API in generated code.
	Description string
	// BaseURL is the connection URL prefix (e.g., "wss://api.example.com/v1").
	BaseURL string
	// DocsURL links to upstream documentation (optional).
	DocsURL string
	// Auth selects the authentication strategy.
	Auth AuthStrategy
	// CredentialEnvVars is the ordered credential fallback chain.
	CredentialEnvVars []string
	// Endpoints lists every WebSocket endpoint.
	Endpoints []WebSocketEndpoint
}

// ClientName returns the name of the generated WebSocket client struct.
func (w *WebSocketAPI) ClientName() string {
	return ExportedIdent(w.Name) + "WebSocket"
}

// EffectiveModulePath returns the output module identifier for the API:
// the lowercased name.
func (w *WebSocketAPI) EffectiveModulePath() string {
	return strings.ToLower(w.Name)
}

// RequiredParams returns the endpoint's required connection parameters in
// declaration order.
func (e *WebSocketEndpoint) RequiredParams() []ConnectionParam {
	var required []ConnectionParam
	for _, p := range e.ConnectionParams {
		if p.Required {
			required = append(required, p)
		}
	}
	return required
}

// ClientMessages returns the messages a client may send, including
// bidirectional ones.
func (e *WebSocketEndpoint) ClientMessages() []MessageSchema {
	return e.messagesByDirection(DirectionClient)
}

// ServerMessages returns the messages a server may send, including
// bidirectional ones.
func (e *WebSocketEndpoint) ServerMessages() []MessageSchema {
	return e.messagesByDirection(DirectionServer)
}

func (e *WebSocketEndpoint) messagesByDirection(dir MessageDirection) []MessageSchema {
	var out []MessageSchema
	for _, m := range e.Messages {
		if m.Direction == dir || m.Direction == DirectionBidirectional {
			out = append(out, m)
		}
	}
	return out
}
