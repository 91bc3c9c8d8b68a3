// Package catalog provides the read-only store of placeable object definitions
package catalog

import (
	"context"

	"github.com/KirkDiggler/innkeeper/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/innkeeper/internal/repositories/catalog Repository

// GetInput contains parameters for looking up one definition
type GetInput struct {
	ID int
}

// GetOutput contains the definition found
type GetOutput struct {
	Definition *entities.ObjectDefinition
}

// ListInput filters the listing. A nil Category lists everything.
type ListInput struct {
	Category *entities.Category
}

// ListOutput contains definitions ordered by id
type ListOutput struct {
	Definitions []*entities.ObjectDefinition
}

// Repository defines lookups over the object catalog. The catalog is built
// once at startup and never changes afterwards.
type Repository interface {
	// Get returns the definition for an id, NOT_FOUND when unknown
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns definitions, optionally filtered by category
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
