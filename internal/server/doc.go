// Package server runs the development bookmarking server: it starts the
// HTTP transport, waits for a stop signal and shuts down gracefully.
package server
