// Package state persists the opaque remote identifiers the lifecycle
// commands share across process invocations: the agent id and name, the
// vector store id and the uploaded file id.
//
// The Store interface keeps the mechanism injectable so the orchestrator can
// be tested deterministically. Three backends are provided: the process
// environment (the default, compatible with azd-managed deployments), a flat
// TOML file, and an in-memory map for tests. Stored values are opaque and
// never validated for staleness; a recorded identifier may refer to a
// resource that no longer exists.
package state
