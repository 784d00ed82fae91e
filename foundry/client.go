package foundry

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/foundryops/agentctl/logging"
)

const (
	// apiVersion pins the Foundry agents data-plane preview.
	apiVersion = "2025-05-15-preview"
	// tokenScope is the AAD scope for Foundry project endpoints.
	tokenScope = "https://ai.azure.com/.default"
)

// Options configure the foundry Client.
type Options struct {
	// HTTPClient backs the agents REST slice. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// PollInterval is the delay between vector store status checks.
	PollInterval time.Duration
	// MaxPolls bounds the readiness poll; 0 polls without bound.
	MaxPolls int
	// Logger receives per-call diagnostics.
	Logger logging.Logger
}

// Client talks to one Foundry project endpoint. It is safe for concurrent use.
type Client struct {
	endpoint     string
	cred         azcore.TokenCredential
	oai          openai.Client
	http         *http.Client
	pollInterval time.Duration
	maxPolls     int
	logger       logging.Logger
}

// NewClient creates a Client for the given project endpoint. The credential
// typically comes from azidentity.NewDefaultAzureCredential.
func NewClient(endpoint string, cred azcore.TokenCredential, optFns ...func(o *Options)) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, errors.New("foundry: project endpoint is required")
	}
	if cred == nil {
		return nil, errors.New("foundry: credential is required")
	}
	opts := Options{
		HTTPClient:   http.DefaultClient,
		PollInterval: time.Second,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	endpoint = strings.TrimSuffix(endpoint, "/")
	oai := openai.NewClient(
		option.WithBaseURL(endpoint+"/openai/v1/"),
		option.WithQueryAdd("api-version", "preview"),
		option.WithHTTPClient(opts.HTTPClient),
		option.WithMiddleware(bearerMiddleware(cred)),
	)
	return &Client{
		endpoint:     endpoint,
		cred:         cred,
		oai:          oai,
		http:         opts.HTTPClient,
		pollInterval: opts.PollInterval,
		maxPolls:     opts.MaxPolls,
		logger:       opts.Logger,
	}, nil
}

// bearerMiddleware injects a fresh bearer token into every request on the
// OpenAI-compatible surface. The credential caches tokens internally.
func bearerMiddleware(cred azcore.TokenCredential) option.Middleware {
	return func(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		tok, err := cred.GetToken(req.Context(), policy.TokenRequestOptions{Scopes: []string{tokenScope}})
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+tok.Token)
		return next(req)
	}
}
