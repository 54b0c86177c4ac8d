// Package server provides the bundled development catalog API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first),
// following the standard Go pattern. The [BasicRouter] implementation uses
// [http.ServeMux] internally with method filtering.
//
// # Catalog API
//
// [CatalogHandler] serves the generic CRUD contract the client consumes
// (GET/POST/PATCH/DELETE on /songs, /artists, and /companies) from an
// in-memory [Store] seeded with JSON fixtures. It exists so the client can be
// exercised end-to-end without a separately provisioned backend; it is a
// development stand-in, not the production API.
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib
// handler interface and adds routes, allowing handlers to register multiple
// routes and encapsulate route definitions within the implementation.
package server
