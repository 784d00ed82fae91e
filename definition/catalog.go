package definition

// The two supported catalogs. Drive exposes delegated OneDrive access through
// function tools executed by the companion host application; Docs binds the
// agent to an indexed product-documentation vector store.

// DriveInstructions is the system prompt for the drive-access agent.
const DriveInstructions = `You are a OneDrive assistant that helps users manage and explore their files.

You can:
- List files in any folder in the user's OneDrive
- Search for files by name or content
- Show drive storage information

Always be helpful and provide clear, organized responses. When listing files, format them nicely.
If an operation fails, explain what happened and suggest alternatives.

Note: You access the user's OneDrive on their behalf using delegated permissions.`

// DocsInstructions is the system prompt for the documentation-search agent.
const DocsInstructions = `You are a helpful product documentation assistant.
You have access to product documentation via file search.
When users ask questions, search the documents to provide accurate answers.
Always cite the source when providing information from documents.
If you cannot find relevant information, say so clearly.`

// DriveTools returns the fixed catalog of delegated drive-access function
// tools. The schemas are submitted verbatim with the agent definition; the
// host application resolves the calls under the signed-in user's credentials.
func DriveTools() []ToolSpec {
	return []ToolSpec{
		FunctionSpec{
			Name:        "list_files",
			Description: "List files in the user's OneDrive. Can optionally filter by folder path.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"folder_path": map[string]any{
						"type":        "string",
						"description": "Optional folder path to list files from. Use '/' for root, or specify a path like 'Documents' or 'Documents/Projects'. If not provided, lists files in the root folder.",
					},
					"include_subfolders": map[string]any{
						"type":        "boolean",
						"description": "Whether to include files from subfolders. Default is false.",
					},
				},
				"required": []string{},
			},
		},
		FunctionSpec{
			Name:        "get_drive_info",
			Description: "Get information about the user's OneDrive, including total storage, used storage, and remaining storage.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
				"required":   []string{},
			},
		},
		FunctionSpec{
			Name:        "search_files",
			Description: "Search for files in the user's OneDrive by name or content.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "The search query to find files. Can search by filename or content.",
					},
				},
				"required": []string{"query"},
			},
		},
	}
}

// NewDriveDefinition builds the drive-access agent definition.
func NewDriveDefinition(modelDeployment string) (Definition, error) {
	return Build(modelDeployment, DriveInstructions, DriveTools())
}

// NewDocsDefinition builds the documentation-search agent definition bound to
// a single vector store.
func NewDocsDefinition(modelDeployment, vectorStoreID string) (Definition, error) {
	return Build(modelDeployment, DocsInstructions, []ToolSpec{
		FileSearchSpec{VectorStoreIDs: []string{vectorStoreID}},
	})
}
