package definition

import "strings"

// ParseAgentID splits a composite agent identifier of the form "name:version".
// Identifiers without a version default to version "1", matching the first
// version the hosting service assigns to a new name.
func ParseAgentID(id string) (name, version string) {
	if i := strings.LastIndex(id, ":"); i >= 0 {
		return id[:i], id[i+1:]
	}
	return id, "1"
}

// FormatAgentID composes a "name:version" identifier.
func FormatAgentID(name, version string) string {
	return name + ":" + version
}
