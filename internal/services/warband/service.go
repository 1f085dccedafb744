// Package warband defines the warband service interface
package warband

//go:generate mockgen -destination=mock/mock_service.go -package=warbandsvcmock github.com/KirkDiggler/warband-api/internal/services/warband Service

import (
	"context"

	"github.com/KirkDiggler/warband-api/internal/engine"
	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
)

// Service manages warband rosters: persistence plus cost and legality
// reporting. Warbands are drafts under construction; rule violations are
// reported alongside every snapshot, never enforced at save time.
type Service interface {
	// CreateWarband stores a new warband with a sanitized, unique name
	CreateWarband(ctx context.Context, input *CreateWarbandInput) (*CreateWarbandOutput, error)

	// GetWarband retrieves a stored warband with its validation state
	GetWarband(ctx context.Context, input *GetWarbandInput) (*GetWarbandOutput, error)

	// ListWarbands returns every stored warband
	ListWarbands(ctx context.Context, input *ListWarbandsInput) (*ListWarbandsOutput, error)

	// UpdateWarband replaces a stored warband's roster
	UpdateWarband(ctx context.Context, input *UpdateWarbandInput) (*UpdateWarbandOutput, error)

	// DeleteWarband removes a stored warband
	DeleteWarband(ctx context.Context, input *DeleteWarbandInput) (*DeleteWarbandOutput, error)

	// ValidateWarband validates a stored warband
	ValidateWarband(ctx context.Context, input *ValidateWarbandInput) (*ValidateWarbandOutput, error)

	// ValidateSnapshot validates an inline warband without storing it
	ValidateSnapshot(ctx context.Context, input *ValidateSnapshotInput) (*ValidateSnapshotOutput, error)

	// ComputeWarbandCost totals a stored warband
	ComputeWarbandCost(ctx context.Context, input *ComputeWarbandCostInput) (*ComputeWarbandCostOutput, error)

	// ComputeWeirdoCost costs an inline weirdo under an ability, for
	// incremental builder feedback
	ComputeWeirdoCost(ctx context.Context, input *ComputeWeirdoCostInput) (*ComputeWeirdoCostOutput, error)
}

// ValidationState summarizes a warband's legality.
type ValidationState struct {
	Valid      bool                   `json:"valid"`
	Total      int32                  `json:"total"`
	Violations []engine.RuleViolation `json:"violations"`
}

// CreateWarbandInput defines the input for CreateWarband
type CreateWarbandInput struct {
	Name       string
	PointLimit int32
	Ability    weirdos.Ability
	Weirdos    []weirdos.Weirdo
}

// CreateWarbandOutput defines the output for CreateWarband
type CreateWarbandOutput struct {
	Warband    *weirdos.Warband
	Validation *ValidationState
}

// GetWarbandInput defines the input for GetWarband
type GetWarbandInput struct {
	WarbandID string
}

// GetWarbandOutput defines the output for GetWarband
type GetWarbandOutput struct {
	Warband    *weirdos.Warband
	Validation *ValidationState
}

// ListWarbandsInput defines the input for ListWarbands
type ListWarbandsInput struct {
	// Empty for now; paging can be added later
}

// ListWarbandsOutput defines the output for ListWarbands
type ListWarbandsOutput struct {
	Warbands []*weirdos.Warband
}

// UpdateWarbandInput defines the input for UpdateWarband
type UpdateWarbandInput struct {
	Warband *weirdos.Warband
}

// UpdateWarbandOutput defines the output for UpdateWarband
type UpdateWarbandOutput struct {
	Warband    *weirdos.Warband
	Validation *ValidationState
}

// DeleteWarbandInput defines the input for DeleteWarband
type DeleteWarbandInput struct {
	WarbandID string
}

// DeleteWarbandOutput defines the output for DeleteWarband
type DeleteWarbandOutput struct {
	// Empty for now
}

// ValidateWarbandInput defines the input for ValidateWarband
type ValidateWarbandInput struct {
	WarbandID string
}

// ValidateWarbandOutput defines the output for ValidateWarband
type ValidateWarbandOutput struct {
	Validation *ValidationState
}

// ValidateSnapshotInput defines the input for ValidateSnapshot
type ValidateSnapshotInput struct {
	Warband *weirdos.Warband
}

// ValidateSnapshotOutput defines the output for ValidateSnapshot
type ValidateSnapshotOutput struct {
	Validation *ValidationState
}

// ComputeWarbandCostInput defines the input for ComputeWarbandCost
type ComputeWarbandCostInput struct {
	WarbandID string
}

// ComputeWarbandCostOutput defines the output for ComputeWarbandCost
type ComputeWarbandCostOutput struct {
	Total       int32
	WeirdoCosts []engine.WeirdoCost
}

// ComputeWeirdoCostInput defines the input for ComputeWeirdoCost
type ComputeWeirdoCostInput struct {
	Weirdo  *weirdos.Weirdo
	Ability weirdos.Ability
}

// ComputeWeirdoCostOutput defines the output for ComputeWeirdoCost
type ComputeWeirdoCostOutput struct {
	Cost      int32
	Breakdown engine.CostBreakdown
}
