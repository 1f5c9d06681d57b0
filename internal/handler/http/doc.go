// Package http implements the REST transport of the vault server.
//
// Routes are wired in routes.go. Account and generator endpoints are public;
// everything under /api/entries requires a bearer token. Request tracing,
// access logging, compression, timeouts and authentication are handled here
// before requests reach the service layer. Service errors are turned into
// status codes and {"error": ...} bodies by writeServiceError.
package http
