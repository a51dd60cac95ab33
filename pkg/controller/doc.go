// Package controller contains HTTP middlewares and response helpers shared by
// the API handlers.
//
// Middlewares:
//   - WithCORS: go-chi/cors configured from the allowed origins.
//   - WithLogger: request id, request scoped logger and access log.
//   - WithMetrics: prometheus request duration by chi route pattern.
//
// Helpers:
//   - WriteJSON / DecodeJSON: goccy/go-json codec for request and response bodies.
//   - GetClientIP: best effort originating address.
package controller
