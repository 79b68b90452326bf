// Package config gathers configuration overrides and platform hints from
// multiple sources (YAML overrides files, board manifests, environment
// variables, CLI flags) with precedence: CLI flags > YAML overrides >
// Environment variables. It produces the typed input the resolver consumes.
package config
