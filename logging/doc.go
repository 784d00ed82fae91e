// Package logging provides a minimal logging interface and adapters for agentctl.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn,
// Error) that the lifecycle orchestrator, foundry client and chat session use
// for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// The design intentionally keeps the interface minimal so callers can plug any
// structured logger without pulling slog through the public API.
package logging
