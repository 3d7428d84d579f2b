package generator

import (
	"bytes"
	"fmt"

	"github.com/yankeeinlondon/schematic/codemod"
	"github.com/yankeeinlondon/schematic/schemerrors"
)

// EnumValue is one member of a generated string enumeration.
type EnumValue struct {
	// Ident is the exported constant identifier (e.g., "VoiceAlloy")
	Ident string
	// Value is the wire value the constant carries (e.g., "alloy")
	Value string
}

// BuildEnumFragment renders a defined string type with its typed const
// block, in the shape codemod.InjectEnum splices into generated files.
func BuildEnumFragment(name, doc string, values []EnumValue) (string, error) {
	if name == "" {
		return "", &schemerrors.ConfigError{
			Option:  "name",
			Message: "enum type name cannot be empty",
		}
	}
	if len(values) == 0 {
		return "", &schemerrors.ConfigError{
			Option:  "values",
			Value:   name,
			Message: "enum needs at least one value",
		}
	}
	for _, v := range values {
		if v.Ident == "" {
			return "", &schemerrors.ConfigError{
				Option:  "values",
				Value:   name,
				Message: "enum value identifiers cannot be empty",
			}
		}
	}

	if doc == "" {
		doc = "enumerates the accepted values."
	}
	data := struct {
		Name   string
		Doc    string
		Values []EnumValue
	}{Name: name, Doc: cleanDescription(doc), Values: values}

	out, err := executeTemplate("enum", data, 0)
	if err != nil {
		return "", fmt.Errorf("rendering enum %s: %w", name, err)
	}
	return string(bytes.TrimSpace(out)) + "\n", nil
}

// InjectEnum renders the enum named name and splices it into the Go file at
// path, replacing any previous declaration of the same type. The file is
// created with a package clause when missing.
func InjectEnum(path, name, doc string, values []EnumValue, opts ...codemod.Option) error {
	fragment, err := BuildEnumFragment(name, doc, values)
	if err != nil {
		return err
	}
	return codemod.InjectEnum(path, name, fragment, opts...)
}
