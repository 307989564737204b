// Package logging builds slog loggers for the CLI and exposes typed
// attribute helpers so call sites stay terse and consistent.
package logging
