// Package config loads, merges and validates configuration for the
// read-later client and the development bookmarking server.
//
// Sources are applied in the following order, later non-zero fields
// overriding earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetClientConfig] and [GetServerConfig] return the role-specific views
// with defaults filled in.
package config
