// Package utils provides small helpers shared across the application:
// slice chunking for batched sync replay, opaque change tokens, JSON
// response writing and the preconfigured outbound HTTP client.
package utils
