package foundry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundryops/agentctl/definition"
)

// staticTokenCredential satisfies azcore.TokenCredential without touching AAD.
type staticTokenCredential struct {
	token string
}

func (c staticTokenCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: c.token, ExpiresOn: time.Now().Add(time.Hour)}, nil
}

// fakeAgentsServer emulates the versioned agents surface: versions increment
// monotonically per name, deletes are acknowledged, listings paginate.
type fakeAgentsServer struct {
	mux      *http.ServeMux
	versions map[string]int
	deletes  []string
	baseURL  string
}

func newFakeAgentsServer(t *testing.T) (*fakeAgentsServer, *httptest.Server) {
	t.Helper()
	f := &fakeAgentsServer{mux: http.NewServeMux(), versions: map[string]int{}}

	f.mux.HandleFunc("POST /agents/{name}/versions", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		f.versions[name]++
		v := f.versions[name]
		json.NewEncoder(w).Encode(map[string]any{
			"id":      fmt.Sprintf("%s:%d", name, v),
			"name":    name,
			"version": v,
		})
	})
	f.mux.HandleFunc("DELETE /agents/{name}/versions/{version}", func(w http.ResponseWriter, r *http.Request) {
		f.deletes = append(f.deletes, r.PathValue("name")+":"+r.PathValue("version"))
		w.WriteHeader(http.StatusNoContent)
	})
	f.mux.HandleFunc("GET /agents", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			json.NewEncoder(w).Encode(map[string]any{
				"value": []map[string]any{{"id": "Beta:1", "name": "Beta", "version": 1}},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"value":    []map[string]any{{"id": "Alpha:2", "name": "Alpha", "version": 2}},
			"nextLink": f.baseURL + "/agents?page=2",
		})
	})

	srv := httptest.NewServer(f.mux)
	t.Cleanup(srv.Close)
	f.baseURL = srv.URL
	return f, srv
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	client, err := NewClient(endpoint, staticTokenCredential{token: "test-token"})
	require.NoError(t, err)
	return client
}

func TestCreateAgentVersion_SameNameIncrementsVersion(t *testing.T) {
	_, srv := newFakeAgentsServer(t)
	client := newTestClient(t, srv.URL)

	def, err := definition.NewDocsDefinition("gpt-4.1-mini", "vs_1")
	require.NoError(t, err)

	first, err := client.CreateAgentVersion(context.Background(), "Demo", def)
	require.NoError(t, err)
	second, err := client.CreateAgentVersion(context.Background(), "Demo", def)
	require.NoError(t, err)

	assert.Equal(t, "Demo", first.Name)
	assert.Equal(t, "Demo", second.Name)
	assert.Equal(t, "1", first.Version)
	assert.Equal(t, "2", second.Version)
	assert.Equal(t, "Demo:1", first.ID)
	assert.Equal(t, "Demo:2", second.ID)
}

func TestCreateAgentVersion_SendsBearerToken(t *testing.T) {
	var auth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /agents/{name}/versions", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"id": "A:1", "name": "A", "version": 1})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	def, err := definition.NewDriveDefinition("gpt-4.1-mini")
	require.NoError(t, err)
	_, err = client.CreateAgentVersion(context.Background(), "A", def)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", auth)
}

func TestDeleteAgentVersion(t *testing.T) {
	f, srv := newFakeAgentsServer(t)
	client := newTestClient(t, srv.URL)

	err := client.DeleteAgentVersion(context.Background(), "Demo", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Demo:2"}, f.deletes)
}

func TestDeleteAgentVersion_RemoteError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /agents/{name}/versions/{version}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "version not found"}`, http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	err := client.DeleteAgentVersion(context.Background(), "Demo", "9")
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "delete", remote.Op)
}

func TestListAgents_FollowsContinuation(t *testing.T) {
	_, srv := newFakeAgentsServer(t)
	client := newTestClient(t, srv.URL)

	agents, err := client.ListAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "Alpha:2", agents[0].ID)
	assert.Equal(t, "Beta:1", agents[1].ID)
}

func TestWireDefinition(t *testing.T) {
	def, err := definition.NewDocsDefinition("gpt-4.1-mini", "vs_9")
	require.NoError(t, err)

	wire, err := wireDefinition(def)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1-mini", wire["model"])
	tools, ok := wire["tools"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, tools, 1)
	assert.Equal(t, "file_search", tools[0]["type"])
	assert.Equal(t, []any{"vs_9"}, tools[0]["vector_store_ids"])
}

// unencodableSpec cannot be rendered as JSON.
type unencodableSpec struct {
	Ch chan int `json:"ch"`
}

func (unencodableSpec) Kind() string { return "function" }

func TestWireDefinition_EncodeError(t *testing.T) {
	def, err := definition.Build("gpt-4.1-mini", "instructions", []definition.ToolSpec{unencodableSpec{}})
	require.NoError(t, err)

	_, err = wireDefinition(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode function tool")
}

func TestCreateAgentVersion_EncodeErrorStopsBeforeRequest(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { requests++ })
	srv := httptest.NewServer(mux)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	def, err := definition.Build("gpt-4.1-mini", "instructions", []definition.ToolSpec{unencodableSpec{}})
	require.NoError(t, err)

	_, err = client.CreateAgentVersion(context.Background(), "Demo", def)
	require.Error(t, err)
	assert.Zero(t, requests)
}
