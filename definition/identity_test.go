package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAgentID(t *testing.T) {
	cases := []struct {
		id      string
		name    string
		version string
	}{
		{"MyAgent:3", "MyAgent", "3"},
		{"MyAgent", "MyAgent", "1"},
		{"ns:MyAgent:12", "ns:MyAgent", "12"},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			name, version := ParseAgentID(tc.id)
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.version, version)
		})
	}
}

func TestFormatAgentID_RoundTrip(t *testing.T) {
	id := FormatAgentID("MyAgent", "3")
	assert.Equal(t, "MyAgent:3", id)

	name, version := ParseAgentID(id)
	assert.Equal(t, "MyAgent", name)
	assert.Equal(t, "3", version)
}
