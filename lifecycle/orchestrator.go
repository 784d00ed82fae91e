package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/foundryops/agentctl/definition"
	"github.com/foundryops/agentctl/foundry"
	"github.com/foundryops/agentctl/logging"
	"github.com/foundryops/agentctl/state"
)

// Provisioner is the remote surface the orchestrator drives. *foundry.Client
// implements it; tests script it.
type Provisioner interface {
	UploadDocument(ctx context.Context, path string) (foundry.UploadedFile, error)
	CreateVectorStore(ctx context.Context, name string, fileIDs []string) (foundry.VectorStore, error)
	AwaitReady(ctx context.Context, id string) (foundry.VectorStore, error)
	CreateAgentVersion(ctx context.Context, name string, def definition.Definition) (foundry.Agent, error)
	DeleteAgentVersion(ctx context.Context, name, version string) error
	DeleteVectorStore(ctx context.Context, id string) error
	DeleteFile(ctx context.Context, id string) error
	ListAgents(ctx context.Context) ([]foundry.Agent, error)
}

// Catalog selects which tool catalog a created agent carries.
type Catalog string

const (
	// CatalogDocs provisions document resources and binds a file-search tool.
	CatalogDocs Catalog = "docs"
	// CatalogDrive declares the delegated drive-access function tools and
	// provisions no document resources.
	CatalogDrive Catalog = "drive"
)

// Options configure the Orchestrator.
type Options struct {
	Logger logging.Logger
}

// Orchestrator sequences provisioning and teardown across the provisioner
// and the state store.
type Orchestrator struct {
	prov   Provisioner
	store  state.Store
	logger logging.Logger
}

// New creates an Orchestrator.
func New(prov Provisioner, store state.Store, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Orchestrator{prov: prov, store: store, logger: opts.Logger}
}

// CreateParams are the inputs to one create invocation.
type CreateParams struct {
	// DocumentPath is the local document indexed for the docs catalog.
	DocumentPath string
	// ModelDeployment is the model deployment name backing the agent.
	ModelDeployment string
	// AgentName names the agent; reusing a name creates the next version.
	AgentName string
	// Catalog defaults to CatalogDocs.
	Catalog Catalog
}

// CreateResult reports the provisioned resources.
type CreateResult struct {
	Agent       foundry.Agent
	VectorStore foundry.VectorStore
	File        foundry.UploadedFile
}

// Create provisions a new resource set and records its identifiers. It does
// not look for an existing set first; a previously provisioned set is left
// orphaned (and its recorded identifiers overwritten) unless it was deleted
// beforehand.
func (o *Orchestrator) Create(ctx context.Context, p CreateParams) (*CreateResult, error) {
	if strings.TrimSpace(p.AgentName) == "" {
		return nil, definition.NewConfigError("agent_name", "agent name is required")
	}
	if prior, ok := o.store.Read(state.KeyAgentID); ok {
		o.logger.Warn("overwriting recorded identifiers; previously provisioned resources will be orphaned",
			"agent_id", prior)
	}
	switch p.Catalog {
	case "", CatalogDocs:
		return o.createDocs(ctx, p)
	case CatalogDrive:
		return o.createDrive(ctx, p)
	default:
		return nil, definition.NewConfigError("catalog", fmt.Sprintf("unknown catalog %q", p.Catalog))
	}
}

// createDocs runs the full chain: upload, vector store, readiness wait,
// definition, agent version.
func (o *Orchestrator) createDocs(ctx context.Context, p CreateParams) (*CreateResult, error) {
	o.logger.Info("uploading document", "path", p.DocumentPath)
	file, err := o.prov.UploadDocument(ctx, p.DocumentPath)
	if err != nil {
		return nil, err
	}

	vsName := fmt.Sprintf("%s-docs-%s", p.AgentName, uuid.NewString()[:8])
	o.logger.Info("creating vector store", "name", vsName, "file_id", file.ID)
	vs, err := o.prov.CreateVectorStore(ctx, vsName, []string{file.ID})
	if err != nil {
		return nil, err
	}

	o.logger.Info("waiting for vector store processing", "vector_store_id", vs.ID)
	vs, err = o.prov.AwaitReady(ctx, vs.ID)
	if err != nil {
		return nil, err
	}

	def, err := definition.NewDocsDefinition(p.ModelDeployment, vs.ID)
	if err != nil {
		return nil, err
	}

	o.logger.Info("creating agent version", "agent_name", p.AgentName)
	agent, err := o.prov.CreateAgentVersion(ctx, p.AgentName, def)
	if err != nil {
		return nil, err
	}

	if err := o.record(map[string]string{
		state.KeyAgentID:       agent.ID,
		state.KeyAgentName:     agent.Name,
		state.KeyVectorStoreID: vs.ID,
		state.KeyFileID:        file.ID,
	}); err != nil {
		return nil, err
	}
	return &CreateResult{Agent: agent, VectorStore: vs, File: file}, nil
}

// createDrive creates an agent with the delegated function-tool catalog only.
func (o *Orchestrator) createDrive(ctx context.Context, p CreateParams) (*CreateResult, error) {
	def, err := definition.NewDriveDefinition(p.ModelDeployment)
	if err != nil {
		return nil, err
	}
	o.logger.Info("creating agent version", "agent_name", p.AgentName)
	agent, err := o.prov.CreateAgentVersion(ctx, p.AgentName, def)
	if err != nil {
		return nil, err
	}
	if err := o.record(map[string]string{
		state.KeyAgentID:   agent.ID,
		state.KeyAgentName: agent.Name,
	}); err != nil {
		return nil, err
	}
	return &CreateResult{Agent: agent}, nil
}

func (o *Orchestrator) record(values map[string]string) error {
	for key, value := range values {
		if err := o.store.Write(key, value); err != nil {
			return fmt.Errorf("record %s: %w", key, err)
		}
	}
	return nil
}

// Delete tears down the recorded resources best-effort. Each of agent,
// vector store and file is attempted independently: an absent identifier is
// skipped, a failed delete is logged as a warning and does not stop the
// remaining attempts. Identifiers are cleared only on successful deletion.
func (o *Orchestrator) Delete(ctx context.Context) *TeardownReport {
	report := &TeardownReport{}

	if id, ok := o.store.Read(state.KeyAgentID); ok {
		name, version := definition.ParseAgentID(id)
		if err := o.prov.DeleteAgentVersion(ctx, name, version); err != nil {
			o.logger.Warn("could not delete agent", "agent_id", id, "error", err)
			report.add("agent", OutcomeFailed, err)
		} else {
			o.clear(state.KeyAgentID, state.KeyAgentName)
			report.add("agent", OutcomeDeleted, nil)
		}
	} else {
		report.add("agent", OutcomeSkipped, nil)
	}

	if id, ok := o.store.Read(state.KeyVectorStoreID); ok {
		if err := o.prov.DeleteVectorStore(ctx, id); err != nil {
			o.logger.Warn("could not delete vector store", "vector_store_id", id, "error", err)
			report.add("vector store", OutcomeFailed, err)
		} else {
			o.clear(state.KeyVectorStoreID)
			report.add("vector store", OutcomeDeleted, nil)
		}
	} else {
		report.add("vector store", OutcomeSkipped, nil)
	}

	if id, ok := o.store.Read(state.KeyFileID); ok {
		if err := o.prov.DeleteFile(ctx, id); err != nil {
			o.logger.Warn("could not delete file", "file_id", id, "error", err)
			report.add("file", OutcomeFailed, err)
		} else {
			o.clear(state.KeyFileID)
			report.add("file", OutcomeDeleted, nil)
		}
	} else {
		report.add("file", OutcomeSkipped, nil)
	}

	return report
}

func (o *Orchestrator) clear(keys ...string) {
	for _, key := range keys {
		if err := o.store.Clear(key); err != nil {
			o.logger.Warn("could not clear identifier", "key", key, "error", err)
		}
	}
}

// List enumerates every agent visible in the project.
func (o *Orchestrator) List(ctx context.Context) ([]foundry.Agent, error) {
	return o.prov.ListAgents(ctx)
}
