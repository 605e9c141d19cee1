package session

import (
	"context"

	"github.com/nguyentantai21042004/verba/internal/models"
)

// DefaultListLimit is used when List is called with a non-positive limit.
const DefaultListLimit = 50

// Store persists sessions. Every method is a single atomic operation.
type Store interface {
	// Create persists a new session and returns its identifier.
	Create(ctx context.Context, transcript string, summary models.Summary) (string, error)
	// List returns up to limit previews, newest first.
	List(ctx context.Context, limit int) ([]models.Preview, error)
	// Get returns the full session or ErrNotFound.
	Get(ctx context.Context, id string) (models.Session, error)
	// Delete removes a session. It reports false when nothing matched id.
	Delete(ctx context.Context, id string) (bool, error)
	Close() error
}
