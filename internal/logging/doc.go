// Package logging wraps log/slog with the console and JSON handlers used
// across shrink, plus small attr helpers so call sites stay terse.
package logging
