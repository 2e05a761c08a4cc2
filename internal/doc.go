// Package internal documents the server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, response shaping, and routing
// - domain: business logic and domain models
// - storage: Postgres repositories and the S3 media store
// - auth, config, metrics, sanitize: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
