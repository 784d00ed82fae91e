// Package foundry implements the client for the remote agent-hosting service:
// an Azure AI Foundry project endpoint. It covers the full provisioning chain
// (document upload, vector store creation, readiness polling, versioned agent
// creation), the inverse per-resource deletion, agent listing, and the
// conversation operations used by interactive chat.
//
// Two remote surfaces are involved. The OpenAI-compatible surface (files,
// vector stores, conversations, responses) is reached through the official
// openai-go client pointed at the project's /openai/v1 route. The versioned
// agents surface is Foundry-specific and reached through a small REST slice
// in this package. Both authenticate with a bearer token obtained from an
// azcore.TokenCredential, typically azidentity.NewDefaultAzureCredential.
//
// The client performs no retries and draws no distinction between transient
// and permanent remote failures; every failed call surfaces as a RemoteError.
package foundry
