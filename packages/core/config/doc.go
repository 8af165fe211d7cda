// Package config handles configuration loading and management for pmrewrite.
//
// It provides functionality for:
//   - Loading rewrite rules from .pmrewrite.yaml or pmrewrite.yaml files
//   - Default configuration values that match the built-in rules
//   - Merging command-line overrides on top of the file
package config
