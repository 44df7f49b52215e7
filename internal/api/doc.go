// Package api implements the playcall HTTP server.
//
// Routes are served with chi and return JSON, except the diagram
// endpoint which returns raw SVG. Every request gets a UUID request id
// and a structured access-log line. Rendered diagrams pass through the
// configured cache; rendering is deterministic, so cache failures only
// cost time, never correctness.
package api
