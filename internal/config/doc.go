// Package config resolves the run configuration for a prune run.
//
// Values come from command-line flags, then the process environment
// (optionally seeded from a .env file), then an optional YAML file, in
// that order of precedence. [Resolve] validates that the API token,
// account ID and project name are present before any network call is
// made. Operational knobs such as retry and pause durations are read by
// [LoadTunables].
package config
