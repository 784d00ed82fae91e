package definition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_PreservesModelAndToolCount(t *testing.T) {
	cases := []struct {
		name  string
		tools []ToolSpec
	}{
		{"no tools", nil},
		{"function catalog", DriveTools()},
		{"file search", []ToolSpec{FileSearchSpec{VectorStoreIDs: []string{"vs_123"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Build("gpt-4.1-mini", "You are helpful.", tc.tools)
			require.NoError(t, err)
			assert.Equal(t, "gpt-4.1-mini", def.Model)
			assert.Len(t, def.Tools, len(tc.tools))
		})
	}
}

func TestBuild_CopiesToolSlice(t *testing.T) {
	tools := []ToolSpec{FileSearchSpec{VectorStoreIDs: []string{"vs_1"}}}
	def, err := Build("m", "i", tools)
	require.NoError(t, err)

	tools[0] = FunctionSpec{Name: "mutated"}
	assert.Equal(t, FileSearchSpec{VectorStoreIDs: []string{"vs_1"}}, def.Tools[0])
}

func TestBuild_RequiredFields(t *testing.T) {
	_, err := Build("", "instructions", nil)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "model", cfgErr.Field)

	_, err = Build("gpt-4.1-mini", "  ", nil)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "instructions", cfgErr.Field)
}

func TestBuild_RejectsMixedVariants(t *testing.T) {
	tools := []ToolSpec{
		FunctionSpec{Name: "f"},
		FileSearchSpec{VectorStoreIDs: []string{"vs_1"}},
	}
	_, err := Build("m", "i", tools)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "tools", cfgErr.Field)
}

func TestBuild_RejectsMultipleFileSearch(t *testing.T) {
	tools := []ToolSpec{
		FileSearchSpec{VectorStoreIDs: []string{"vs_1"}},
		FileSearchSpec{VectorStoreIDs: []string{"vs_2"}},
	}
	_, err := Build("m", "i", tools)
	assert.Error(t, err)
}

func TestDriveTools_Catalog(t *testing.T) {
	tools := DriveTools()
	require.Len(t, tools, 3)
	names := make([]string, 0, len(tools))
	for _, spec := range tools {
		fn, ok := spec.(FunctionSpec)
		require.True(t, ok)
		assert.Equal(t, "function", fn.Kind())
		assert.NotEmpty(t, fn.Description)
		names = append(names, fn.Name)
	}
	assert.ElementsMatch(t, []string{"list_files", "get_drive_info", "search_files"}, names)
}

func TestNewDocsDefinition(t *testing.T) {
	def, err := NewDocsDefinition("gpt-4.1-mini", "vs_abc")
	require.NoError(t, err)
	require.Len(t, def.Tools, 1)
	fs, ok := def.Tools[0].(FileSearchSpec)
	require.True(t, ok)
	assert.Equal(t, []string{"vs_abc"}, fs.VectorStoreIDs)
}
