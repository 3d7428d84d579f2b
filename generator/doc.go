// Package generator turns validated API definitions into a Go source
// package of strongly-typed clients.
//
// Each definition yields a request wrapper per endpoint, a sealed request
// union, and a client type whose dispatch surface matches exactly the
// response kinds its endpoints use. Definitions sharing an explicit module
// path land in one output file; every output package also carries a doc
// file, a shared runtime support file, and a README manifest.
//
// Generation is pure: Generate returns file contents in memory, and
// GenerateResult.WriteFiles commits them through the atomic, validate-first
// mutation pipeline in package codemod.
package generator
