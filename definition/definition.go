package definition

import (
	"fmt"
	"strings"
)

// ToolSpec is a declaration attached to an agent definition. Implementations
// carry their own wire payload; Kind discriminates the variant on the wire.
type ToolSpec interface {
	// Kind returns the wire discriminator for this tool variant
	// ("function" or "file_search").
	Kind() string
}

// FunctionSpec declares a JSON-Schema-described callable. Execution is
// delegated entirely to an external host process; this program only submits
// the schema with the agent definition.
type FunctionSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Kind returns the wire discriminator for function tools.
func (FunctionSpec) Kind() string { return "function" }

// FileSearchSpec declares a retrieval tool bound to one or more vector stores.
type FileSearchSpec struct {
	VectorStoreIDs []string `json:"vector_store_ids"`
}

// Kind returns the wire discriminator for file-search tools.
func (FileSearchSpec) Kind() string { return "file_search" }

// Definition is the complete payload for creating one agent version.
type Definition struct {
	Model        string
	Instructions string
	Tools        []ToolSpec
}

// ConfigError reports a missing or invalid definition field or configuration
// value. It is fatal wherever it surfaces; there is no partial definition.
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
}

// NewConfigError creates a ConfigError for the given field.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// Build assembles a Definition from its parts. The model deployment and
// instructions must be non-empty. The tool set must be one of the two
// supported variants: a catalog of function tools, or a single file-search
// tool; mixing variants is rejected.
func Build(modelDeployment, instructions string, tools []ToolSpec) (Definition, error) {
	if strings.TrimSpace(modelDeployment) == "" {
		return Definition{}, NewConfigError("model", "model deployment is required")
	}
	if strings.TrimSpace(instructions) == "" {
		return Definition{}, NewConfigError("instructions", "instructions are required")
	}
	var functions, searches int
	for _, spec := range tools {
		switch spec.Kind() {
		case "function":
			functions++
		case "file_search":
			searches++
		default:
			return Definition{}, NewConfigError("tools", fmt.Sprintf("unsupported tool kind %q", spec.Kind()))
		}
	}
	if searches > 0 && functions > 0 {
		return Definition{}, NewConfigError("tools", "function tools and file search are mutually exclusive")
	}
	if searches > 1 {
		return Definition{}, NewConfigError("tools", "at most one file search tool may be declared")
	}
	def := Definition{
		Model:        modelDeployment,
		Instructions: instructions,
		Tools:        make([]ToolSpec, len(tools)),
	}
	copy(def.Tools, tools)
	return def, nil
}
