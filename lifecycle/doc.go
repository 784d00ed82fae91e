// Package lifecycle orchestrates the create, delete and list commands.
//
// Create drives the dependency-ordered provisioning chain (document upload,
// vector store creation, readiness wait, definition build, versioned agent
// creation) and records the resulting identifiers in the state store. A
// remote failure anywhere in the chain aborts the remaining steps and leaves
// already-created resources unrecorded. Create never checks for prior state:
// re-invoking it provisions a fresh resource set and only warns when it
// overwrites recorded identifiers.
//
// Delete is the best-effort inverse: each recorded resource is deleted
// independently, failures are downgraded to warnings, and the per-resource
// outcomes are aggregated into a TeardownReport.
package lifecycle
