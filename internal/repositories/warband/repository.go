// Package warband defines the interface for warband persistence
package warband

//go:generate mockgen -destination=mock/mock_repository.go -package=warbandmock github.com/KirkDiggler/warband-api/internal/repositories/warband Repository

import (
	"context"

	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
)

// Repository defines the interface for warband persistence
type Repository interface {
	// Create stores a new warband
	// Returns errors.InvalidArgument for malformed input
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a warband by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the warband doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing warband
	// Returns errors.InvalidArgument for malformed input
	// Returns errors.NotFound if the warband doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a warband by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the warband doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored warband
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListNames returns the stored warband names as a snapshot for
	// case-insensitive uniqueness checks
	// Returns errors.Internal for storage failures
	ListNames(ctx context.Context, input ListNamesInput) (*ListNamesOutput, error)
}

// CreateInput defines the input for creating a warband
type CreateInput struct {
	Warband *weirdos.Warband
}

// CreateOutput defines the output for creating a warband
type CreateOutput struct {
	Warband *weirdos.Warband
}

// GetInput defines the input for getting a warband
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a warband
type GetOutput struct {
	Warband *weirdos.Warband
}

// UpdateInput defines the input for updating a warband
type UpdateInput struct {
	Warband *weirdos.Warband
}

// UpdateOutput defines the output for updating a warband
type UpdateOutput struct {
	Warband *weirdos.Warband
}

// DeleteInput defines the input for deleting a warband
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a warband
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput defines the input for listing warbands
type ListInput struct {
	// Empty for now; paging can be added later
}

// ListOutput defines the output for listing warbands
type ListOutput struct {
	Warbands []*weirdos.Warband
}

// ListNamesInput defines the input for listing warband names
type ListNamesInput struct {
	// Empty for now
}

// ListNamesOutput defines the output for listing warband names
type ListNamesOutput struct {
	Names []string
}
