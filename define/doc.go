// Package define provides the declarative model for describing HTTP and
// WebSocket APIs as data.
//
// An API is a value of type API: a name, a base URL, an authentication
// strategy with an ordered credential fallback chain, default headers, and a
// list of endpoints. Each Endpoint pairs an HTTP method and path template
// with a request shape (JSON, form-data, url-encoded, text, or binary) and a
// response shape (JSON, text, binary, or empty). Path templates use curly
// braces for parameters: "/users/{user_id}/posts/{post_id}".
//
// Definitions are plain data. They carry no behavior beyond derived
// accessors, so they can be validated, diffed, and fed to the generator
// without side effects. The catalog package holds ready-made definitions
// for well-known APIs.
package define
