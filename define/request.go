package define

// RequestKind identifies the payload encoding of an endpoint request.
type RequestKind int

const (
	// RequestJSON is a JSON body serialized from a typed schema.
	RequestJSON RequestKind = iota
	// RequestFormData is a multipart/form-data body built from fields.
	RequestFormData
	// RequestURLEncoded is an application/x-www-form-urlencoded body.
	RequestURLEncoded
	// RequestText is a raw text body with an explicit content type.
	RequestText
	// RequestBinary is a raw byte body with an explicit content type.
	RequestBinary
)

// String returns the lowercase name of the request kind.
func (k RequestKind) String() string {
	switch k {
	case RequestJSON:
		return "json"
	case RequestFormData:
		return "formdata"
	case RequestURLEncoded:
		return "urlencoded"
	case RequestText:
		return "text"
	case RequestBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Request describes the payload an endpoint accepts.
//
// The zero value is not meaningful; use the constructor matching the
// encoding. Endpoints without a request body use a nil *Request.
type Request struct {
	// Kind selects the payload encoding.
	Kind RequestKind
	// Schema is the typed body for RequestJSON.
	Schema Schema
	// Fields describes form fields for RequestFormData and RequestURLEncoded.
	Fields []FormField
	// ContentType is the MIME type for RequestText and RequestBinary.
	ContentType string
}

// JSONBody returns a JSON request with a typed schema.
func JSONBody(schema Schema) *Request {
	return &Request{Kind: RequestJSON, Schema: schema}
}

// JSONBodyType returns a JSON request for a same-package type name.
func JSONBodyType(typeName string) *Request {
	return JSONBody(NewSchema(typeName))
}

// FormData returns a multipart/form-data request built from fields.
func FormData(fields ...FormField) *Request {
	return &Request{Kind: RequestFormData, Fields: fields}
}

// URLEncoded returns a url-encoded form request built from fields.
func URLEncoded(fields ...FormField) *Request {
	return &Request{Kind: RequestURLEncoded, Fields: fields}
}

// TextBody returns a raw text request with the given content type.
func TextBody(contentType string) *Request {
	return &Request{Kind: RequestText, ContentType: contentType}
}

// BinaryBody returns a raw byte request with the given content type.
func BinaryBody(contentType string) *Request {
	return &Request{Kind: RequestBinary, ContentType: contentType}
}

// IsJSON reports whether the request carries a typed JSON body.
func (r *Request) IsJSON() bool {
	return r != nil && r.Kind == RequestJSON
}

// FormFieldKind identifies the value type of a form field.
type FormFieldKind int

const (
	// FieldText is a plain string value.
	FieldText FormFieldKind = iota
	// FieldFile is a single file upload.
	FieldFile
	// FieldFiles is a multi-file upload.
	FieldFiles
	// FieldJSON is a JSON-serialized value with a typed schema.
	FieldJSON
)

// String returns the lowercase name of the field kind.
func (k FormFieldKind) String() string {
	switch k {
	case FieldText:
		return "text"
	case FieldFile:
		return "file"
	case FieldFiles:
		return "files"
	case FieldJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormField describes one field of a form-data or url-encoded request.
// Fields are required unless marked optional.
type FormField struct {
	// Name is the wire name of the field.
	Name string
	// Kind selects the field's value type.
	Kind FormFieldKind
	// Required is true unless the field was marked optional.
	Required bool
	// Description documents the field in generated code.
	Description string
	// Accept lists accepted MIME types for file fields (empty = any).
	Accept []string
	// MinFiles and MaxFiles constrain FieldFiles counts (0 = unconstrained).
	MinFiles int
	MaxFiles int
	// Schema is the typed value for FieldJSON.
	Schema Schema
}

// TextField returns a required plain-text field.
func TextField(name string) FormField {
	return FormField{Name: name, Kind: FieldText, Required: true}
}

// FileField returns a required single-file field accepting any MIME type.
func FileField(name string) FormField {
	return FormField{Name: name, Kind: FieldFile, Required: true}
}

// FileFieldAccept returns a required single-file field restricted to the
// given MIME types.
func FileFieldAccept(name string, accept ...string) FormField {
	return FormField{Name: name, Kind: FieldFile, Required: true, Accept: accept}
}

// FilesField returns a required multi-file field with no count constraints.
func FilesField(name string) FormField {
	return FormField{Name: name, Kind: FieldFiles, Required: true}
}

// FilesFieldConstrained returns a required multi-file field with count
// constraints (0 means unconstrained on that side).
func FilesFieldConstrained(name string, minFiles, maxFiles int, accept ...string) FormField {
	return FormField{
		Name:     name,
		Kind:     FieldFiles,
		Required: true,
		Accept:   accept,
		MinFiles: minFiles,
		MaxFiles: maxFiles,
	}
}

// JSONField returns a required JSON-valued field with a typed schema.
func JSONField(name string, schema Schema) FormField {
	return FormField{Name: name, Kind: FieldJSON, Required: true, Schema: schema}
}

// Optional marks the field as optional and returns it for chaining.
func (f FormField) Optional() FormField {
	f.Required = false
	return f
}

// WithDescription sets the field description and returns it for chaining.
func (f FormField) WithDescription(desc string) FormField {
	f.Description = desc
	return f
}
