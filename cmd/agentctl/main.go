// agentctl provisions, tears down, lists and chats with a versioned agent
// hosted on an Azure AI Foundry project endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	flag "github.com/spf13/pflag"

	"github.com/foundryops/agentctl/chat"
	"github.com/foundryops/agentctl/definition"
	"github.com/foundryops/agentctl/foundry"
	"github.com/foundryops/agentctl/lifecycle"
	"github.com/foundryops/agentctl/logging"
	"github.com/foundryops/agentctl/state"
)

const (
	envProjectEndpoint = "PROJECT_ENDPOINT"
	envModelDeployment = "CHAT_MODEL_DEPLOYMENT"
	envAgentName       = "AGENT_NAME"

	defaultModelDeployment = "gpt-4.1-mini"
	defaultAgentName       = "DocumentAgent"
)

var (
	docPath      = flag.String("doc", "docs/product_manual.md", "document to index into the vector store")
	catalog      = flag.String("catalog", "docs", "tool catalog for created agents (docs or drive)")
	stateFile    = flag.String("state-file", "", "persist identifiers in a TOML file instead of the process environment")
	azdMirror    = flag.Bool("azd", false, "mirror identifier writes into the azd environment")
	pollInterval = flag.Duration("poll-interval", time.Second, "delay between vector store status checks")
	maxPolls     = flag.Int("max-polls", 300, "abort provisioning after this many status checks (0 = no bound)")
	logLevel     = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	logger := logging.New(func(o *logging.Options) { o.Level = *logLevel })
	store := newStore()
	ctx := context.Background()

	switch strings.ToLower(flag.Arg(0)) {
	case "create":
		runCreate(ctx, store, logger)
	case "delete":
		runDelete(ctx, store, logger)
	case "list":
		runList(ctx, store, logger)
	case "chat":
		runChat(ctx, store, logger)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", flag.Arg(0))
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: agentctl [flags] <command>

Commands:
  create  Provision the agent and its document resources
  delete  Tear down recorded resources (best effort)
  list    List all agents in the project
  chat    Interactive chat with the provisioned agent

Flags:
%s`, flag.CommandLine.FlagUsages())
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func newStore() state.Store {
	if *stateFile != "" {
		return state.NewFileStore(*stateFile)
	}
	return state.NewEnvStore(func(o *state.EnvOptions) {
		if *azdMirror {
			o.Persist = azdEnvSet
		}
	})
}

// azdEnvSet mirrors an identifier into the azd environment so it survives
// across azd-managed invocations.
func azdEnvSet(key, value string) error {
	cmd := exec.Command("azd", "env", "set", key, value)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func newClient(logger logging.Logger) *foundry.Client {
	endpoint := os.Getenv(envProjectEndpoint)
	if endpoint == "" {
		fatalf("%s environment variable is required", envProjectEndpoint)
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		fatalf("acquire credential: %v", err)
	}
	client, err := foundry.NewClient(endpoint, cred, func(o *foundry.Options) {
		o.PollInterval = *pollInterval
		o.MaxPolls = *maxPolls
		o.Logger = logger
	})
	if err != nil {
		fatalf("%v", err)
	}
	return client
}

func agentName() string {
	if v := os.Getenv(envAgentName); v != "" {
		return v
	}
	return defaultAgentName
}

func modelDeployment() string {
	if v := os.Getenv(envModelDeployment); v != "" {
		return v
	}
	return defaultModelDeployment
}

func runCreate(ctx context.Context, store state.Store, logger logging.Logger) {
	orch := lifecycle.New(newClient(logger), store, func(o *lifecycle.Options) { o.Logger = logger })

	fmt.Printf("Creating agent %q...\n", agentName())
	result, err := orch.Create(ctx, lifecycle.CreateParams{
		DocumentPath:    *docPath,
		ModelDeployment: modelDeployment(),
		AgentName:       agentName(),
		Catalog:         lifecycle.Catalog(*catalog),
	})
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Agent created successfully!")
	fmt.Printf("  Agent ID: %s\n", result.Agent.ID)
	if result.VectorStore.ID != "" {
		fmt.Printf("  Vector Store ID: %s\n", result.VectorStore.ID)
	}
	if result.File.ID != "" {
		fmt.Printf("  File ID: %s\n", result.File.ID)
	}
	fmt.Println(strings.Repeat("=", 50))
}

func runDelete(ctx context.Context, store state.Store, logger logging.Logger) {
	orch := lifecycle.New(newClient(logger), store, func(o *lifecycle.Options) { o.Logger = logger })

	fmt.Println("Deleting agent and resources...")
	report := orch.Delete(ctx)
	fmt.Print(report.String())
	if report.Clean() {
		fmt.Println("Cleanup completed.")
	} else {
		fmt.Println("Cleanup completed with warnings.")
	}
}

func runList(ctx context.Context, store state.Store, logger logging.Logger) {
	orch := lifecycle.New(newClient(logger), store, func(o *lifecycle.Options) { o.Logger = logger })

	agents, err := orch.List(ctx)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println("Agents in project:")
	fmt.Println(strings.Repeat("-", 50))
	for _, a := range agents {
		fmt.Printf("  %s (id: %s)\n", a.Name, a.ID)
	}
}

func runChat(ctx context.Context, store state.Store, logger logging.Logger) {
	name := ""
	if id, ok := store.Read(state.KeyAgentID); ok {
		name, _ = definition.ParseAgentID(id)
	} else if v, ok := store.Read(state.KeyAgentName); ok {
		name = v
	}
	if name == "" {
		fatalf("%s not set. Run 'create' first.", state.KeyAgentID)
	}

	session := chat.NewSession(newClient(logger), name, func(o *chat.Options) { o.Logger = logger })
	if err := session.Run(ctx); err != nil {
		fatalf("%v", err)
	}
}
