package foundry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/foundryops/agentctl/definition"
)

// The versioned agents surface is Foundry-specific and has no SDK coverage,
// so this file carries a thin REST slice over it.

type agentPayload struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Version json.Number `json:"version"`
}

func (p agentPayload) toAgent() Agent {
	a := Agent{ID: p.ID, Name: p.Name, Version: p.Version.String()}
	if a.ID == "" && a.Name != "" {
		a.ID = definition.FormatAgentID(a.Name, a.Version)
	}
	return a
}

// CreateAgentVersion creates a new version of the named agent from the given
// definition. Reusing a name is not an error: the service assigns the next
// monotonic version under that name. This is the sole update mechanism;
// existing versions are never mutated.
func (c *Client) CreateAgentVersion(ctx context.Context, name string, def definition.Definition) (Agent, error) {
	wire, err := wireDefinition(def)
	if err != nil {
		return Agent{}, err
	}
	body := map[string]any{"definition": wire}
	var out agentPayload
	path := fmt.Sprintf("agents/%s/versions", url.PathEscape(name))
	if err := c.doJSON(ctx, http.MethodPost, path, body, &out); err != nil {
		return Agent{}, remoteErr("create", "agent "+name, err)
	}
	agent := out.toAgent()
	if agent.Name == "" {
		agent.Name = name
	}
	c.logger.Debug("agent version created", "agent_id", agent.ID)
	return agent, nil
}

// DeleteAgentVersion deletes one version of the named agent.
func (c *Client) DeleteAgentVersion(ctx context.Context, name, version string) error {
	path := fmt.Sprintf("agents/%s/versions/%s", url.PathEscape(name), url.PathEscape(version))
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return remoteErr("delete", "agent "+definition.FormatAgentID(name, version), err)
	}
	return nil
}

// ListAgents enumerates every agent visible in the project, following
// continuation links until the listing is exhausted.
func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	var agents []Agent
	next := c.endpoint + "/agents?api-version=" + apiVersion
	for next != "" {
		var page struct {
			Value    []agentPayload `json:"value"`
			NextLink string         `json:"nextLink"`
		}
		if err := c.doURL(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, remoteErr("list", "agents", err)
		}
		for _, p := range page.Value {
			agents = append(agents, p.toAgent())
		}
		next = page.NextLink
	}
	return agents, nil
}

// wireDefinition flattens a Definition into the agents API request shape.
func wireDefinition(def definition.Definition) (map[string]any, error) {
	tools := make([]map[string]any, 0, len(def.Tools))
	for _, spec := range def.Tools {
		tool, err := wireTool(spec)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return map[string]any{
		"kind":         "prompt",
		"model":        def.Model,
		"instructions": def.Instructions,
		"tools":        tools,
	}, nil
}

// wireTool renders a tool spec as its JSON object plus the type discriminator.
func wireTool(spec definition.ToolSpec) (map[string]any, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encode %s tool: %w", spec.Kind(), err)
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode %s tool: %w", spec.Kind(), err)
	}
	m["type"] = spec.Kind()
	return m, nil
}

// doJSON issues a request against a path relative to the project endpoint.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	return c.doURL(ctx, method, c.endpoint+"/"+path+"?api-version="+apiVersion, body, out)
}

func (c *Client) doURL(ctx context.Context, method, rawURL string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	tok, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{tokenScope}})
	if err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s %s: %s: %s", method, rawURL, resp.Status, bytes.TrimSpace(detail))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
