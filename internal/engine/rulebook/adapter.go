// Package rulebook implements the engine interface for the warband ruleset
package rulebook

import (
	"context"

	"github.com/KirkDiggler/warband-api/internal/clients/catalog"
	"github.com/KirkDiggler/warband-api/internal/engine"
	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
	"github.com/KirkDiggler/warband-api/internal/errors"
)

// Adapter implements engine.Engine over a reference-data catalog.
type Adapter struct {
	catalog catalog.Client
}

// Config holds the dependencies for the rulebook adapter
type Config struct {
	Catalog catalog.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	return nil
}

// New creates a new rulebook adapter
func New(cfg *Config) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Adapter{
		catalog: cfg.Catalog,
	}, nil
}

// Ensure Adapter implements the Engine interface
var _ engine.Engine = (*Adapter)(nil)

// ComputeWeirdoCost returns the discounted cost of a single weirdo.
func (a *Adapter) ComputeWeirdoCost(
	_ context.Context,
	input *engine.ComputeWeirdoCostInput,
) (*engine.ComputeWeirdoCostOutput, error) {
	if input == nil || input.Weirdo == nil {
		return nil, errors.InvalidArgument("weirdo is required")
	}

	breakdown, err := a.weirdoCost(input.Weirdo, input.Ability)
	if err != nil {
		return nil, err
	}

	return &engine.ComputeWeirdoCostOutput{
		Cost:      breakdown.Total(),
		Breakdown: breakdown,
	}, nil
}

// ComputeWarbandCost returns the warband total and per-weirdo subtotals.
func (a *Adapter) ComputeWarbandCost(
	_ context.Context,
	input *engine.ComputeWarbandCostInput,
) (*engine.ComputeWarbandCostOutput, error) {
	if input == nil || input.Warband == nil {
		return nil, errors.InvalidArgument("warband is required")
	}

	costs, err := a.warbandCosts(input.Warband)
	if err != nil {
		return nil, err
	}

	var total int32
	for _, wc := range costs {
		total += wc.Cost
	}

	return &engine.ComputeWarbandCostOutput{
		Total:       total,
		WeirdoCosts: costs,
	}, nil
}

// ValidateWeirdo runs the per-weirdo rules only.
func (a *Adapter) ValidateWeirdo(
	_ context.Context,
	input *engine.ValidateWeirdoInput,
) (*engine.ValidateWeirdoOutput, error) {
	if input == nil || input.Weirdo == nil {
		return nil, errors.InvalidArgument("weirdo is required")
	}

	violations, err := a.validateWeirdo(input.Weirdo, input.Ability)
	if err != nil {
		return nil, err
	}

	return &engine.ValidateWeirdoOutput{
		Violations: violations,
	}, nil
}

// ValidateWarband runs every rule in fixed order, collecting all violations.
func (a *Adapter) ValidateWarband(
	_ context.Context,
	input *engine.ValidateWarbandInput,
) (*engine.ValidateWarbandOutput, error) {
	if input == nil || input.Warband == nil {
		return nil, errors.InvalidArgument("warband is required")
	}

	return a.validateWarband(input.Warband)
}

// warbandCosts computes every weirdo's cost in warband order.
func (a *Adapter) warbandCosts(wb *weirdos.Warband) ([]engine.WeirdoCost, error) {
	costs := make([]engine.WeirdoCost, 0, len(wb.Weirdos))
	for i := range wb.Weirdos {
		w := &wb.Weirdos[i]
		breakdown, err := a.weirdoCost(w, wb.Ability)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to cost weirdo %s", weirdoRef(w))
		}
		costs = append(costs, engine.WeirdoCost{
			WeirdoID:  w.ID,
			Cost:      breakdown.Total(),
			Breakdown: breakdown,
		})
	}
	return costs, nil
}

// weirdoRef identifies a weirdo in error text, preferring the ID.
func weirdoRef(w *weirdos.Weirdo) string {
	if w.ID != "" {
		return w.ID
	}
	return w.Name
}
