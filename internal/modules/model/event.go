package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventProjectUploaded = "project.uploaded"
	EventProjectDeleted  = "project.deleted"
	EventFileUpdated     = "file.updated"
)

// Event is published after a successful change to a hosted project.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Project    string    `json:"project"`
	Filename   string    `json:"filename,omitempty"`
	FileCount  int       `json:"file_count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(typ, project string) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		Project:    project,
		OccurredAt: time.Now().UTC(),
	}
}
