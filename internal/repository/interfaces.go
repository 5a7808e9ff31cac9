package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/prazo/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// RunRepo stores computed schedule runs together with their phase records.
type RunRepo interface {
	Create(ctx context.Context, run *domain.ArchivedRun) error
	GetByID(ctx context.Context, id string) (*domain.ArchivedRun, error)
	// List returns run headers, newest first, without phase records.
	// A limit <= 0 returns every run.
	List(ctx context.Context, limit int) ([]*domain.ArchivedRun, error)
	Delete(ctx context.Context, id string) error
}
