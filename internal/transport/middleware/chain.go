// Package middleware holds the HTTP middleware the server mounts around
// the REST routes: panic recovery, request IDs, access logging, CORS,
// identity extraction, and rate limiting.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds the given middleware into one. The first argument becomes
// the outermost wrapper: Chain(a, b)(h) serves a request as a -> b -> h.
func Chain(outerToInner ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		wrapped := h
		for i := len(outerToInner) - 1; i >= 0; i-- {
			wrapped = outerToInner[i](wrapped)
		}
		return wrapped
	}
}
