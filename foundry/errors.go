package foundry

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentNotFound is returned when the local document to upload does
	// not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrVectorStoreFailed is returned when the hosting service reports a
	// vector store reached the failed status. The store is unusable; an agent
	// must not be created against it.
	ErrVectorStoreFailed = errors.New("vector store processing failed")

	// ErrProvisioningTimeout is returned when a vector store did not reach a
	// terminal status within the configured poll bound.
	ErrProvisioningTimeout = errors.New("vector store not ready within poll limit")
)

// RemoteError wraps any failed call to the hosting service with the operation
// and resource involved. Callers decide whether it aborts (provisioning) or
// merely warns (teardown).
type RemoteError struct {
	Op       string // create, upload, delete, list, retrieve, respond
	Resource string // resource kind plus identifier where known
	Err      error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s %s: %v", e.Op, e.Resource, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *RemoteError) Unwrap() error { return e.Err }

func remoteErr(op, resource string, err error) error {
	return &RemoteError{Op: op, Resource: resource, Err: err}
}
