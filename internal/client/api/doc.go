// Package api is the HTTP client for the catalog backend.
//
// # Overview
//
// The package provides:
//  1. A Client with stateless request/response methods for books,
//     reviews, reading lists and recommendations, all under a single
//     configured base URL.
//  2. Bearer authentication on the routes that need it, with tokens
//     pulled per request from a TokenSource (the identity adapter).
//  3. Uniform request dressing: JSON bodies, a uuid X-Request-Id and a
//     bookshelf/<version> User-Agent on every call.
//
// # Error Handling
//
// Transport failures and non-2xx statuses collapse to the sentinel
// ErrRequestFailed (the offending status is carried in the message, the
// body is not parsed). The one status-specific case is GetBook, which
// turns a 404 into (nil, nil): absent, not an error.
//
// There is no retry, caching or batching; every method is a single
// best-effort round trip honoring ctx.
package api
