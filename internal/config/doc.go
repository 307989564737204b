// Package config loads and validates the TOML configuration for the
// captionseg CLI: display limits, logging, and the result cache.
package config
