package foundry

// UploadedFile is a document uploaded to the hosting service's file store.
// Immutable once created; only its identifier is carried forward.
type UploadedFile struct {
	ID      string
	Purpose string
}

// VectorStoreStatus is the processing state of a remote vector store.
type VectorStoreStatus string

const (
	// VectorStoreInProgress means the store is still indexing its files.
	VectorStoreInProgress VectorStoreStatus = "in_progress"
	// VectorStoreCompleted means the store is ready for retrieval.
	VectorStoreCompleted VectorStoreStatus = "completed"
	// VectorStoreFailed means indexing failed; the store is unusable.
	VectorStoreFailed VectorStoreStatus = "failed"
)

// Terminal reports whether the status will no longer change on its own.
func (s VectorStoreStatus) Terminal() bool {
	return s == VectorStoreCompleted || s == VectorStoreFailed
}

// VectorStore is a remote indexed collection of uploaded documents.
type VectorStore struct {
	ID      string
	Name    string
	Status  VectorStoreStatus
	FileIDs []string
}

// Agent is one version of a named agent hosted on the service. The composite
// ID has the form "name:version"; versions increment monotonically per name
// and existing versions are never mutated in place.
type Agent struct {
	ID      string
	Name    string
	Version string
}
