// Package engine defines the cost and constraint rule engine contract
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/warband-api/internal/engine Engine

import (
	"context"
)

// Engine computes point costs and validates warband legality. All operations
// are pure reads over caller-supplied snapshots; repeated calls with the same
// input yield identical results.
type Engine interface {
	// ComputeWeirdoCost returns the discounted cost of a single weirdo
	// under a warband ability
	ComputeWeirdoCost(ctx context.Context, input *ComputeWeirdoCostInput) (*ComputeWeirdoCostOutput, error)

	// ComputeWarbandCost returns the total cost of a warband plus the
	// per-weirdo subtotals
	ComputeWarbandCost(ctx context.Context, input *ComputeWarbandCostInput) (*ComputeWarbandCostOutput, error)

	// ValidateWeirdo runs the per-weirdo rules only, for incremental
	// builder feedback
	ValidateWeirdo(ctx context.Context, input *ValidateWeirdoInput) (*ValidateWeirdoOutput, error)

	// ValidateWarband runs every rule over the warband without
	// short-circuiting; an empty violation list means the warband is legal
	ValidateWarband(ctx context.Context, input *ValidateWarbandInput) (*ValidateWarbandOutput, error)
}
