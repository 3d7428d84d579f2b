package codemod

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/yankeeinlondon/schematic/schemerrors"
)

// defaultPackageName is used when InjectEnum must create the target file.
const defaultPackageName = "schema"

// WithPackageName sets the package clause used when InjectEnum creates a
// missing target file. Ignored when the target exists.
func WithPackageName(name string) Option {
	return func(s *settings) { s.packageName = name }
}

// InjectEnum replaces the named enumeration in the file at path with
// fragment, leaving every other declaration untouched.
//
// An enumeration is a defined type declaration plus any const block typed
// with it. Both are removed wherever they appear and the fragment is
// appended at the end of the file. When the file does not exist it is
// created with a package clause (see WithPackageName) and the fragment.
// When the type is not present the fragment is simply appended.
//
// The fragment must itself declare the named type; anything else is
// rejected before the target is read. The mutation goes through Apply, so
// the target is never left in a partially rewritten state.
func InjectEnum(path, name, fragment string, opts ...Option) error {
	if err := checkFragment(name, fragment); err != nil {
		return err
	}
	s := applyOptions(opts)
	pkg := s.packageName
	if pkg == "" {
		pkg = defaultPackageName
	}

	compute := func(current []byte) ([]byte, error) {
		body := normalizeFragment(fragment)
		if current == nil {
			return append([]byte("package "+pkg+"\n\n"), body...), nil
		}
		remaining, err := removeEnum(path, current, name)
		if err != nil {
			return nil, err
		}
		out := bytes.TrimRight(remaining, "\n")
		out = append(out, '\n', '\n')
		return append(out, body...), nil
	}

	injectOpts := append([]Option{WithCreateDirs()}, opts...)
	return Apply(path, compute, injectOpts...)
}

// checkFragment verifies the fragment parses and declares the named type.
func checkFragment(name, fragment string) error {
	src := "package check\n\n" + fragment
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fragment.go", src, parser.ParseComments)
	if err != nil {
		return &schemerrors.SyntaxError{
			Path:    "fragment",
			Stage:   "precheck",
			Message: "enum fragment is not valid Go",
			Cause:   err,
		}
	}
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Name == name {
				return nil
			}
		}
	}
	return &schemerrors.ConfigError{
		Option:  "fragment",
		Value:   name,
		Message: "fragment does not declare the named type",
	}
}

// removeEnum splices out the type declaration named name and every const
// block typed with it, preserving all other bytes of src.
func removeEnum(path string, src []byte, name string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		// Apply's pre/post checks report syntax problems; this guards the
		// case where InjectEnum is called without WithPreCheck.
		return nil, &schemerrors.SyntaxError{
			Path:    path,
			Stage:   "precheck",
			Message: "target file is not valid Go",
			Cause:   err,
		}
	}

	type span struct{ start, end int }
	var spans []span
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || !declaresEnum(gen, name) {
			continue
		}
		start := gen.Pos()
		if gen.Doc != nil {
			start = gen.Doc.Pos()
		}
		spans = append(spans, span{
			start: fset.Position(start).Offset,
			end:   fset.Position(gen.End()).Offset,
		})
	}
	if len(spans) == 0 {
		return src, nil
	}

	var out bytes.Buffer
	out.Grow(len(src))
	prev := 0
	for _, sp := range spans {
		out.Write(src[prev:sp.start])
		prev = sp.end
		// swallow the blank line the removed declaration left behind
		for prev < len(src) && src[prev] == '\n' {
			prev++
		}
	}
	out.Write(src[prev:])
	return out.Bytes(), nil
}

// declaresEnum reports whether gen is the type declaration for name or a
// const block whose specs are typed with name.
func declaresEnum(gen *ast.GenDecl, name string) bool {
	switch gen.Tok {
	case token.TYPE:
		for _, spec := range gen.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Name == name {
				return true
			}
		}
	case token.CONST:
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			if ident, ok := vs.Type.(*ast.Ident); ok && ident.Name == name {
				return true
			}
		}
	}
	return false
}

// normalizeFragment ensures the fragment ends with exactly one newline.
func normalizeFragment(fragment string) []byte {
	return append(bytes.TrimRight([]byte(fragment), "\n"), '\n')
}
