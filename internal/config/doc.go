// Package config assembles and validates the client configuration.
//
// Values are collected from three sources, merged in priority order
// (earlier sources win for fields set in multiple places):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path given by -config or the CONFIG variable)
//
// [GetStructuredConfig] returns the raw merged result; [GetClientConfig]
// returns the validated view with defaults applied, which is what the rest
// of the application consumes.
package config
