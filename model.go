package ldraw

import (
	"context"
	"time"
)

// Model is a parsed root document stored for later querying.
type Model struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PartType  string    `json:"partType"`
	PartCount int       `json:"partCount"`
	Subparts  int       `json:"subparts"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the model contains invalid fields.
func (m *Model) Validate() error {
	if m.Name == "" {
		return Errorf(EINVALID, "model name required")
	}
	return nil
}

// PartSummary describes one stored part of a model.
type PartSummary struct {
	PartID   string `json:"partId"`
	PartType string `json:"partType"`
	Subparts int    `json:"subparts"`
	Lines    int    `json:"lines"`
	Tris     int    `json:"tris"`
	Quads    int    `json:"quads"`
	OptLines int    `json:"optlines"`

	// Hash fingerprints the part's parsed content. Equal hashes across
	// models mean equal geometry.
	Hash string `json:"hash"`
}

// ModelService represents a service for storing parsed models.
type ModelService interface {
	// CreateModel stores doc and all of its parts under a new model ID,
	// which is assigned to m.
	CreateModel(ctx context.Context, m *Model, doc *Document) error

	// FindModelByID retrieves a model by ID.
	// Returns ENOTFOUND if model does not exist.
	FindModelByID(ctx context.Context, id string) (*Model, error)

	// FindModelParts retrieves the parts stored for a model ordered by part ID.
	// Returns ENOTFOUND if model does not exist.
	FindModelParts(ctx context.Context, modelID string) ([]*PartSummary, error)

	// FindModelRefs retrieves the part references of one stored document in
	// file order. An empty parent selects the root document.
	FindModelRefs(ctx context.Context, modelID, parent string) ([]*PartReference, error)
}
