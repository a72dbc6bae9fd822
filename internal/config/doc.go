// Package config provides configuration loading, merging, and validation
// for both book-stack binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The server entry point is [GetStructuredConfig]; the terminal client uses
// [GetClientConfig], which maps the shared structured config down to the
// fields the client needs.
package config
