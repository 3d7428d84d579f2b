package define

// ResponseKind identifies the payload shape an endpoint returns.
type ResponseKind int

const (
	// ResponseJSON is a JSON payload decoded into a typed schema.
	ResponseJSON ResponseKind = iota
	// ResponseText is a plain text payload.
	ResponseText
	// ResponseBinary is a raw byte payload (audio, images, archives).
	ResponseBinary
	// ResponseEmpty is a success with no payload of interest.
	ResponseEmpty
)

// String returns the lowercase name of the response kind.
func (k ResponseKind) String() string {
	switch k {
	case ResponseJSON:
		return "json"
	case ResponseText:
		return "text"
	case ResponseBinary:
		return "binary"
	case ResponseEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Response describes the payload an endpoint returns on success.
// The zero value is a JSON response with no schema; use the constructors.
type Response struct {
	// Kind selects the payload shape.
	Kind ResponseKind
	// Schema is the decoded type for ResponseJSON.
	Schema Schema
}

// JSONResponse returns a JSON response decoded into the given schema.
func JSONResponse(schema Schema) Response {
	return Response{Kind: ResponseJSON, Schema: schema}
}

// JSONResponseType returns a JSON response for a same-package type name.
func JSONResponseType(typeName string) Response {
	return JSONResponse(NewSchema(typeName))
}

// TextResponse returns a plain-text response.
func TextResponse() Response {
	return Response{Kind: ResponseText}
}

// BinaryResponse returns a raw-bytes response.
func BinaryResponse() Response {
	return Response{Kind: ResponseBinary}
}

// EmptyResponse returns a response whose body is ignored.
func EmptyResponse() Response {
	return Response{Kind: ResponseEmpty}
}

// IsJSON reports whether the response decodes into a typed schema.
func (r Response) IsJSON() bool { return r.Kind == ResponseJSON }

// IsText reports whether the response is plain text.
func (r Response) IsText() bool { return r.Kind == ResponseText }

// IsBinary reports whether the response is raw bytes.
func (r Response) IsBinary() bool { return r.Kind == ResponseBinary }

// IsEmpty reports whether the response body is ignored.
func (r Response) IsEmpty() bool { return r.Kind == ResponseEmpty }
