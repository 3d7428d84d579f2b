// Package codemod provides the safe mutation primitive for Go source files:
// parse, validate, mutate, re-validate, and commit atomically.
//
// Apply reads the target file (if any), hands its contents to a compute
// function, parses the computed replacement to prove it is valid Go, writes
// it to a temporary file in the target's directory, and renames the
// temporary file over the target. A failure at any stage leaves the target
// byte-for-byte unchanged and removes the temporary file.
//
// InjectEnum builds on Apply to replace a single named enumeration (a
// defined string type and its typed const block) inside an existing file,
// touching nothing else in the file. The generator uses it to keep
// generated identifier enums current without regenerating whole files.
package codemod
