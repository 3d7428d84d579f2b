// Package schematic turns declarative API definitions into strongly-typed
// Go client source code.
//
// An API is described once as data (see the define package): endpoints,
// request and response shapes, authentication, and headers. The generator
// package synthesizes a complete client for each definition: typed request
// wrappers, a sealed request union, a client struct with credential
// resolution, and exactly the dispatch methods the definition's response
// shapes require. The validator package checks definitions before any code
// is produced, and the codemod package provides the safe mutation primitive
// every file write goes through: parse, validate, mutate, re-validate, and
// commit atomically via a temp file rename.
//
// # Packages
//
//   - define: the declarative definition model for REST and WebSocket APIs
//   - validator: pre-generation validation with accumulated issue reports
//   - generator: source synthesis, assembly, and formatted output
//   - codemod: atomic validated file mutation and enum injection
//   - catalog: ready-made definitions for well-known APIs
//   - schemerrors: structured error types for errors.Is / errors.As
//
// # Quick start
//
//	def := catalog.OpenAI()
//	result, err := generator.GenerateWithOptions(
//		generator.WithDefinitions(def),
//		generator.WithOutputDir("./internal/clients"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./internal/clients"); err != nil {
//		log.Fatal(err)
//	}
//
// The schematic CLI (cmd/schematic) wraps the same pipeline with generate,
// validate, inject, and mcp subcommands.
package schematic
