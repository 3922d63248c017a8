// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables (AEGIS_*)
//  3. Command-line flags and the positional vault path
//
// The main entry point is [GetClientConfig].
package config
