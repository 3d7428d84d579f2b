package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yankeeinlondon/schematic/codemod"
	"github.com/yankeeinlondon/schematic/schemerrors"
)

// WriteFiles commits every generated file into outputDir. Go files go
// through the safe mutation pipeline, so each one is re-validated and
// written atomically; non-Go artifacts get the atomic commit without the
// syntax check. When the result was produced with WithDryRun, every file
// still passes validation but nothing is written.
//
// The directory must already exist; a missing directory is reported as
// schemerrors.ErrOutputDirNotFound rather than silently created.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	return r.WriteFilesWithLogger(outputDir, slog.Default())
}

// WriteFilesWithLogger is WriteFiles with an explicit logger.
func (r *GenerateResult) WriteFilesWithLogger(outputDir string, logger *slog.Logger) error {
	if outputDir == "" {
		return &schemerrors.ConfigError{
			Option:  "outputDir",
			Message: "output directory cannot be empty",
		}
	}

	info, err := os.Stat(outputDir)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%s: %w", outputDir, schemerrors.ErrOutputDirNotFound)
	case err != nil:
		return &schemerrors.WriteError{
			Path:    outputDir,
			Message: "checking output directory",
			Cause:   err,
		}
	case !info.IsDir():
		return fmt.Errorf("%s is not a directory: %w", outputDir, schemerrors.ErrOutputDirNotFound)
	}

	for _, file := range r.Files {
		if file.Name != filepath.Base(file.Name) || file.Name == "." || file.Name == ".." {
			return &schemerrors.WriteError{
				Path:    file.Name,
				Message: "generated file name must be a bare file name",
			}
		}
		path := filepath.Join(outputDir, file.Name)

		opts := []codemod.Option{
			codemod.WithOverwrite(),
			codemod.WithLogger(logger),
		}
		if r.DryRun {
			opts = append(opts, codemod.WithDryRun())
		}

		var err error
		if strings.HasSuffix(file.Name, ".go") {
			content := file.Content
			err = codemod.Apply(path, func([]byte) ([]byte, error) {
				return content, nil
			}, opts...)
		} else {
			err = codemod.WriteRaw(path, file.Content, opts...)
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", file.Name, err)
		}
	}

	logger.Info("wrote generated files",
		"dir", outputDir,
		"files", len(r.Files),
		"dry_run", r.DryRun)
	return nil
}
