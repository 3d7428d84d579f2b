// Package catalog holds pre-built API definitions ready to validate and
// generate. Each constructor returns a fresh definition, so callers can
// adjust module paths or trim endpoints without affecting other callers.
package catalog
