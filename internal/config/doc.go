// Package config loads, normalizes, and validates shrink's TOML
// configuration. Engine paths and directories are resolved once at process
// start and passed explicitly into the components that need them.
package config
