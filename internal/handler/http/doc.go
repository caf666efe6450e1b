// Package http exposes the in-memory bookmarking service over a REST API.
//
// Routes mirror what the client's HTTP adapter calls: folders, folder
// listings, and bookmark mutations. Tracing, access logging, compression
// and bearer token checks run as middleware before a request reaches the
// service.
package http
