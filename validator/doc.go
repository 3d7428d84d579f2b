// Package validator checks API definitions before any code is generated.
//
// Validation never stops at the first problem: every check runs and every
// issue found is accumulated into the Result, so a definition author sees
// the complete picture in one pass. Errors block generation; warnings do
// not.
//
// Validate checks a single definition. ValidateAll additionally checks
// cross-definition constraints, most importantly that two definitions only
// share an output module by both declaring the same explicit module path.
//
//	result := validator.ValidateAll(catalog.All()...)
//	if err := result.Err(); err != nil {
//	    log.Fatal(err)
//	}
package validator
