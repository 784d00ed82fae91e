package foundry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/openai/openai-go"
)

// UploadDocument uploads a local document to the service's file store with
// the "assistants" purpose so it can be attached to a vector store.
func (c *Client) UploadDocument(ctx context.Context, path string) (UploadedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return UploadedFile{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return UploadedFile{}, fmt.Errorf("open document %s: %w", path, err)
	}
	defer f.Close()

	uploaded, err := c.oai.Files.New(ctx, openai.FileNewParams{
		File:    openai.File(f, filepath.Base(path), "application/octet-stream"),
		Purpose: openai.FilePurposeAssistants,
	})
	if err != nil {
		return UploadedFile{}, remoteErr("upload", "file "+filepath.Base(path), err)
	}
	c.logger.Debug("document uploaded", "file_id", uploaded.ID, "path", path)
	return UploadedFile{ID: uploaded.ID, Purpose: string(uploaded.Purpose)}, nil
}

// CreateVectorStore creates a vector store over the given uploaded files.
// The store starts in the in_progress status; callers must wait for
// completion (AwaitReady) before referencing it from an agent definition.
func (c *Client) CreateVectorStore(ctx context.Context, name string, fileIDs []string) (VectorStore, error) {
	vs, err := c.oai.VectorStores.New(ctx, openai.VectorStoreNewParams{
		Name:    openai.String(name),
		FileIDs: fileIDs,
	})
	if err != nil {
		return VectorStore{}, remoteErr("create", "vector store "+name, err)
	}
	c.logger.Debug("vector store created", "vector_store_id", vs.ID, "status", string(vs.Status))
	return VectorStore{
		ID:      vs.ID,
		Name:    vs.Name,
		Status:  VectorStoreStatus(vs.Status),
		FileIDs: fileIDs,
	}, nil
}

// RetrieveVectorStore fetches the current state of a vector store.
func (c *Client) RetrieveVectorStore(ctx context.Context, id string) (VectorStore, error) {
	vs, err := c.oai.VectorStores.Get(ctx, id)
	if err != nil {
		return VectorStore{}, remoteErr("retrieve", "vector store "+id, err)
	}
	return VectorStore{ID: vs.ID, Name: vs.Name, Status: VectorStoreStatus(vs.Status)}, nil
}

// AwaitReady blocks until the vector store reaches a terminal status, polling
// at the client's configured interval and bound.
func (c *Client) AwaitReady(ctx context.Context, id string) (VectorStore, error) {
	return AwaitReady(ctx, c, id, func(o *AwaitOptions) {
		o.Interval = c.pollInterval
		o.MaxPolls = c.maxPolls
	})
}

// DeleteVectorStore removes a vector store. Independent of other deletions.
func (c *Client) DeleteVectorStore(ctx context.Context, id string) error {
	if _, err := c.oai.VectorStores.Delete(ctx, id); err != nil {
		return remoteErr("delete", "vector store "+id, err)
	}
	return nil
}

// DeleteFile removes an uploaded file. Independent of other deletions.
func (c *Client) DeleteFile(ctx context.Context, id string) error {
	if _, err := c.oai.Files.Delete(ctx, id); err != nil {
		return remoteErr("delete", "file "+id, err)
	}
	return nil
}
