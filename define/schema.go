package define

// Schema references a named payload type in generated code.
//
// TypeName is the bare type name (e.g., "ChatCompletionBody"). ModulePath
// optionally qualifies it with the package the type lives in; when set,
// generated code refers to the type as "module.TypeName".
type Schema struct {
	// TypeName is the Go type name of the payload.
	TypeName string
	// ModulePath is the package qualifier, empty for same-package types.
	ModulePath string
}

// NewSchema returns a Schema for a type in the generated package itself.
func NewSchema(typeName string) Schema {
	return Schema{TypeName: typeName}
}

// SchemaWithPath returns a Schema for a type in another package.
func SchemaWithPath(typeName, modulePath string) Schema {
	return Schema{TypeName: typeName, ModulePath: modulePath}
}

// FullPath returns the qualified reference for the type: "module.TypeName"
// when a module path is set, otherwise just the type name.
func (s Schema) FullPath() string {
	if s.ModulePath == "" {
		return s.TypeName
	}
	return s.ModulePath + "." + s.TypeName
}

// IsZero reports whether the schema references no type.
func (s Schema) IsZero() bool {
	return s.TypeName == "" && s.ModulePath == ""
}
