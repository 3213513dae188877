// Package config provides configuration loading, merging, and validation
// facilities for the eightball client and development server.
//
// Configuration is assembled from several sources. Later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path taken from CONFIG or -c / -config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig], which
// project the merged [StructuredConfig] onto the settings each binary needs.
package config
