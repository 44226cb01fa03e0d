// Package slog decorates pagescope services with structured logging. Each
// decorator logs one record per call with its duration and error.
package slog
