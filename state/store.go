package state

// Identifier keys written at create time and read at delete/chat time.
const (
	KeyAgentID       = "AGENT_ID"
	KeyAgentName     = "AGENT_NAME"
	KeyVectorStoreID = "VECTORSTORE_ID"
	KeyFileID        = "FILE_ID"
)

// Store is the cross-invocation owner of remote resource identifiers.
// Implementations are not required to be safe for concurrent writers; the
// CLI runs one command at a time.
type Store interface {
	// Read returns the stored value for key. Empty values count as absent.
	Read(key string) (string, bool)
	// Write records key=value.
	Write(key, value string) error
	// Clear removes key. Clearing an absent key is not an error.
	Clear(key string) error
}
