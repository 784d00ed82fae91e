// Package definition builds versioned-agent definitions: the model deployment,
// instruction prompt and tool declarations submitted when a new agent version
// is created on the hosting service.
//
// Everything here is a pure mapping with no I/O. Tools are declarative only:
// function tools describe a JSON-Schema callable executed by an external host
// process under delegated credentials, and the file-search tool binds the
// agent to a vector store maintained by the hosting service. Neither is ever
// executed in-process.
//
// The package also owns the composite agent identifier format "name:version"
// used across create, delete and chat invocations.
package definition
