package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// RunID identifies a single analysis run
type RunID ID

func (id RunID) String() string { return ID(id).String() }

// NewRunID creates an identifier for an analysis run
func NewRunID() RunID {
	return RunID(NewID())
}

// Artifact represents one file written by an analysis run
type Artifact struct {
	Kind ArtifactKind `json:"kind"`
	Path string       `json:"path"`
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	// ArtifactSummaryText is the human-readable descriptive statistics block.
	ArtifactSummaryText ArtifactKind = "summary_text"
	// ArtifactHistogram is the rendered histogram image.
	ArtifactHistogram ArtifactKind = "histogram"
	// ArtifactBoxPlot is the rendered box plot image.
	ArtifactBoxPlot ArtifactKind = "boxplot"
)
