package foundry

import (
	"context"
	"strings"
)

// Conversation operations back the interactive chat session. They run on the
// OpenAI-compatible surface through the SDK's raw request methods: the
// conversations route is a preview API, and response generation needs the
// Foundry-specific agent_reference body the typed params cannot express.

// CreateConversation starts an empty server-held conversation and returns
// its identifier.
func (c *Client) CreateConversation(ctx context.Context) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	body := map[string]any{"items": []any{}}
	if err := c.oai.Post(ctx, "/conversations", body, &out); err != nil {
		return "", remoteErr("create", "conversation", err)
	}
	return out.ID, nil
}

// AddUserMessage appends one user item to the conversation.
func (c *Client) AddUserMessage(ctx context.Context, conversationID, text string) error {
	body := map[string]any{
		"items": []map[string]any{
			{"type": "message", "role": "user", "content": text},
		},
	}
	if err := c.oai.Post(ctx, "/conversations/"+conversationID+"/items", body, nil); err != nil {
		return remoteErr("create", "conversation item", err)
	}
	return nil
}

// GenerateReply asks the named agent to respond to the conversation as it
// stands and returns the concatenated output text.
func (c *Client) GenerateReply(ctx context.Context, conversationID, agentName string) (string, error) {
	body := map[string]any{
		"conversation": conversationID,
		"input":        "",
		"agent": map[string]any{
			"type": "agent_reference",
			"name": agentName,
		},
	}
	var out responsePayload
	if err := c.oai.Post(ctx, "/responses", body, &out); err != nil {
		return "", remoteErr("respond", "conversation "+conversationID, err)
	}
	return out.outputText(), nil
}

// DeleteConversation removes the server-held conversation.
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	if err := c.oai.Delete(ctx, "/conversations/"+conversationID, nil, nil); err != nil {
		return remoteErr("delete", "conversation "+conversationID, err)
	}
	return nil
}

type responsePayload struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// outputText joins every output_text part of every message output item.
func (r responsePayload) outputText() string {
	var b strings.Builder
	for _, item := range r.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type == "output_text" {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}
