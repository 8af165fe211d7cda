// Package cmd implements the pmrewrite CLI commands using Cobra.
//
// Available commands:
//   - pmrewrite [collection]: rewrite a Postman collection in place
//   - init: write the default rules file
//   - version: show pmrewrite version information
package cmd
