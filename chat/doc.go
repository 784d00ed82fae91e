// Package chat runs the interactive conversation loop against a provisioned
// agent. The session is single-threaded and synchronous: one line of input,
// one appended user item, one response request, one printed reply. Exactly
// one server-held conversation exists for the session's lifetime; it is
// created at start and deleted best-effort on exit.
package chat
