package codemod

import (
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yankeeinlondon/schematic/internal/fileutil"
	"github.com/yankeeinlondon/schematic/schemerrors"
)

// ComputeFunc produces the new content of a file from its current content.
// current is nil when the target does not exist (or WithOverwrite is set).
type ComputeFunc func(current []byte) ([]byte, error)

// Option configures an Apply call.
type Option func(*settings)

type settings struct {
	preCheck    bool
	overwrite   bool
	dryRun      bool
	createDirs  bool
	perm        os.FileMode
	logger      *slog.Logger
	packageName string
}

// WithPreCheck parses the existing target before computing the replacement.
// A malformed target fails the mutation with a SyntaxError before compute
// runs, so hand-edited breakage is reported instead of silently rewritten.
func WithPreCheck() Option {
	return func(s *settings) { s.preCheck = true }
}

// WithOverwrite ignores any existing content: compute receives nil and the
// target is replaced wholesale.
func WithOverwrite() Option {
	return func(s *settings) { s.overwrite = true }
}

// WithDryRun runs every stage, including validation of the computed
// content, but skips the temp-file write and rename.
func WithDryRun() Option {
	return func(s *settings) { s.dryRun = true }
}

// WithCreateDirs creates missing parent directories of the target.
func WithCreateDirs() Option {
	return func(s *settings) { s.createDirs = true }
}

// WithPerm sets the file mode for newly created targets.
// Defaults to fileutil.ReadableByAll.
func WithPerm(perm os.FileMode) Option {
	return func(s *settings) { s.perm = perm }
}

// WithLogger sets the logger for mutation progress. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

func applyOptions(opts []Option) *settings {
	s := &settings{
		perm:   fileutil.ReadableByAll,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply atomically replaces the contents of path with the result of compute.
//
// The computed content must parse as a Go source file; content that does
// not is rejected with a *schemerrors.SyntaxError and the target is left
// untouched. The commit itself is a write to a temporary file in the
// target's directory followed by a rename, so a crash mid-write can never
// leave a half-written target.
func Apply(path string, compute ComputeFunc, opts ...Option) error {
	s := applyOptions(opts)

	var current []byte
	if !s.overwrite {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			current = data
		case os.IsNotExist(err):
			current = nil
		default:
			return &schemerrors.WriteError{Path: path, Message: "reading target", Cause: err}
		}
	}

	if s.preCheck && current != nil {
		if err := parseGoSource(path, current, "precheck"); err != nil {
			return err
		}
	}

	next, err := compute(current)
	if err != nil {
		return fmt.Errorf("computing replacement for %s: %w", path, err)
	}

	if err := parseGoSource(path, next, "postcheck"); err != nil {
		return err
	}

	if s.dryRun {
		s.logger.Info("dry run: skipping write", "path", path, "bytes", len(next))
		return nil
	}

	if s.createDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return &schemerrors.WriteError{Path: path, Message: "creating parent directories", Cause: err}
		}
	}

	return commit(path, next, s)
}

// WriteRaw atomically replaces path with content, skipping the Go syntax
// checks. Used for non-Go companion artifacts committed alongside generated
// source.
func WriteRaw(path string, content []byte, opts ...Option) error {
	s := applyOptions(opts)

	if s.dryRun {
		s.logger.Info("dry run: skipping write", "path", path, "bytes", len(content))
		return nil
	}

	if s.createDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return &schemerrors.WriteError{Path: path, Message: "creating parent directories", Cause: err}
		}
	}

	return commit(path, content, s)
}

// commit writes content to a temp file in the target's directory and
// renames it over the target.
func commit(path string, content []byte, s *settings) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &schemerrors.WriteError{Path: path, Message: "creating temp file", Cause: err}
	}
	tmpName := tmp.Name()

	cleanup := func(cause error, msg string) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &schemerrors.WriteError{Path: path, Message: msg, Cause: cause}
	}

	if _, err := tmp.Write(content); err != nil {
		return cleanup(err, "writing temp file")
	}
	if err := tmp.Chmod(s.perm); err != nil {
		return cleanup(err, "setting permissions")
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &schemerrors.WriteError{Path: path, Message: "renaming temp file into place", Cause: err}
	}

	s.logger.Debug("committed file", "path", path, "bytes", len(content))
	return nil
}

// parseGoSource checks that src parses as a Go file, converting the first
// parse error into a *schemerrors.SyntaxError with its source location.
func parseGoSource(path string, src []byte, stage string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err == nil {
		return nil
	}

	serr := &schemerrors.SyntaxError{
		Path:    path,
		Stage:   stage,
		Message: "content is not valid Go",
		Cause:   err,
	}
	var list scanner.ErrorList
	if ok := asErrorList(err, &list); ok && len(list) > 0 {
		serr.Line = list[0].Pos.Line
		serr.Column = list[0].Pos.Column
		serr.Message = list[0].Msg
	}
	return serr
}

func asErrorList(err error, out *scanner.ErrorList) bool {
	if list, ok := err.(scanner.ErrorList); ok {
		*out = list
		return true
	}
	return false
}
