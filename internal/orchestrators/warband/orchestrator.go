// Package warband implements the warband orchestrator
package warband

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/warband-api/internal/engine"
	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
	"github.com/KirkDiggler/warband-api/internal/errors"
	"github.com/KirkDiggler/warband-api/internal/pkg/clock"
	"github.com/KirkDiggler/warband-api/internal/pkg/idgen"
	"github.com/KirkDiggler/warband-api/internal/pkg/names"
	warbandrepo "github.com/KirkDiggler/warband-api/internal/repositories/warband"
	warbandsvc "github.com/KirkDiggler/warband-api/internal/services/warband"
)

// Config holds the dependencies for the warband orchestrator
type Config struct {
	WarbandRepo WarbandRepo
	Engine      engine.Engine
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// WarbandRepo aliases the repository interface for config readability.
type WarbandRepo = warbandrepo.Repository

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WarbandRepo == nil {
		vb.RequiredField("WarbandRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the warband.Service interface
type Orchestrator struct {
	warbandRepo WarbandRepo
	engine      engine.Engine
	idGenerator idgen.Generator
	clock       clock.Clock
}

// New creates a new warband orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		warbandRepo: cfg.WarbandRepo,
		engine:      cfg.Engine,
		idGenerator: cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ warbandsvc.Service = (*Orchestrator)(nil)

// CreateWarband stores a new warband with a sanitized, unique name.
func (o *Orchestrator) CreateWarband(
	ctx context.Context,
	input *warbandsvc.CreateWarbandInput,
) (*warbandsvc.CreateWarbandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := names.Sanitize(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	existing, err := o.warbandRepo.ListNames(ctx, warbandrepo.ListNamesInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list existing warband names")
	}
	name = names.EnsureUnique(name, existing.Names)

	now := o.clock.Now().Unix()
	wb := &weirdos.Warband{
		ID:         o.idGenerator.Generate(),
		Name:       name,
		PointLimit: input.PointLimit,
		Ability:    input.Ability,
		Weirdos:    input.Weirdos,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	o.assignWeirdoIDs(wb)

	validation, err := o.validate(ctx, wb)
	if err != nil {
		return nil, err
	}

	if _, err := o.warbandRepo.Create(ctx, warbandrepo.CreateInput{Warband: wb}); err != nil {
		return nil, errors.Wrap(err, "failed to create warband")
	}

	slog.InfoContext(ctx, "created warband",
		"warband_id", wb.ID,
		"name", wb.Name,
		"valid", validation.Valid,
	)

	return &warbandsvc.CreateWarbandOutput{
		Warband:    wb,
		Validation: validation,
	}, nil
}

// GetWarband retrieves a stored warband with its validation state.
func (o *Orchestrator) GetWarband(
	ctx context.Context,
	input *warbandsvc.GetWarbandInput,
) (*warbandsvc.GetWarbandOutput, error) {
	if input == nil || input.WarbandID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}

	out, err := o.warbandRepo.Get(ctx, warbandrepo.GetInput{ID: input.WarbandID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get warband %s", input.WarbandID)
	}

	validation, err := o.validate(ctx, out.Warband)
	if err != nil {
		return nil, err
	}

	return &warbandsvc.GetWarbandOutput{
		Warband:    out.Warband,
		Validation: validation,
	}, nil
}

// ListWarbands returns every stored warband.
func (o *Orchestrator) ListWarbands(
	ctx context.Context,
	_ *warbandsvc.ListWarbandsInput,
) (*warbandsvc.ListWarbandsOutput, error) {
	out, err := o.warbandRepo.List(ctx, warbandrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warbands")
	}

	return &warbandsvc.ListWarbandsOutput{Warbands: out.Warbands}, nil
}

// UpdateWarband replaces a stored warband's roster.
func (o *Orchestrator) UpdateWarband(
	ctx context.Context,
	input *warbandsvc.UpdateWarbandInput,
) (*warbandsvc.UpdateWarbandOutput, error) {
	if input == nil || input.Warband == nil {
		return nil, errors.InvalidArgument("warband is required")
	}
	if input.Warband.ID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}

	existing, err := o.warbandRepo.Get(ctx, warbandrepo.GetInput{ID: input.Warband.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get warband %s", input.Warband.ID)
	}

	wb := input.Warband
	wb.Name = names.Sanitize(wb.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", wb.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// Renames must stay unique against every other warband; the stored
	// name is excluded so saving without a rename is a no-op.
	if weirdos.NameKey(wb.Name) != weirdos.NameKey(existing.Warband.Name) {
		namesOut, err := o.warbandRepo.ListNames(ctx, warbandrepo.ListNamesInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list existing warband names")
		}
		wb.Name = names.EnsureUnique(wb.Name, excludeName(namesOut.Names, existing.Warband.Name))
	}

	wb.CreatedAt = existing.Warband.CreatedAt
	wb.UpdatedAt = o.clock.Now().Unix()
	o.assignWeirdoIDs(wb)

	validation, err := o.validate(ctx, wb)
	if err != nil {
		return nil, err
	}

	if _, err := o.warbandRepo.Update(ctx, warbandrepo.UpdateInput{Warband: wb}); err != nil {
		return nil, errors.Wrapf(err, "failed to update warband %s", wb.ID)
	}

	slog.InfoContext(ctx, "updated warband",
		"warband_id", wb.ID,
		"name", wb.Name,
		"valid", validation.Valid,
	)

	return &warbandsvc.UpdateWarbandOutput{
		Warband:    wb,
		Validation: validation,
	}, nil
}

// DeleteWarband removes a stored warband.
func (o *Orchestrator) DeleteWarband(
	ctx context.Context,
	input *warbandsvc.DeleteWarbandInput,
) (*warbandsvc.DeleteWarbandOutput, error) {
	if input == nil || input.WarbandID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}

	if _, err := o.warbandRepo.Delete(ctx, warbandrepo.DeleteInput{ID: input.WarbandID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete warband %s", input.WarbandID)
	}

	slog.InfoContext(ctx, "deleted warband", "warband_id", input.WarbandID)

	return &warbandsvc.DeleteWarbandOutput{}, nil
}

// ValidateWarband validates a stored warband.
func (o *Orchestrator) ValidateWarband(
	ctx context.Context,
	input *warbandsvc.ValidateWarbandInput,
) (*warbandsvc.ValidateWarbandOutput, error) {
	if input == nil || input.WarbandID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}

	out, err := o.warbandRepo.Get(ctx, warbandrepo.GetInput{ID: input.WarbandID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get warband %s", input.WarbandID)
	}

	validation, err := o.validate(ctx, out.Warband)
	if err != nil {
		return nil, err
	}

	return &warbandsvc.ValidateWarbandOutput{Validation: validation}, nil
}

// ValidateSnapshot validates an inline warband without storing it.
func (o *Orchestrator) ValidateSnapshot(
	ctx context.Context,
	input *warbandsvc.ValidateSnapshotInput,
) (*warbandsvc.ValidateSnapshotOutput, error) {
	if input == nil || input.Warband == nil {
		return nil, errors.InvalidArgument("warband is required")
	}

	validation, err := o.validate(ctx, input.Warband)
	if err != nil {
		return nil, err
	}

	return &warbandsvc.ValidateSnapshotOutput{Validation: validation}, nil
}

// ComputeWarbandCost totals a stored warband.
func (o *Orchestrator) ComputeWarbandCost(
	ctx context.Context,
	input *warbandsvc.ComputeWarbandCostInput,
) (*warbandsvc.ComputeWarbandCostOutput, error) {
	if input == nil || input.WarbandID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}

	out, err := o.warbandRepo.Get(ctx, warbandrepo.GetInput{ID: input.WarbandID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get warband %s", input.WarbandID)
	}

	costOut, err := o.engine.ComputeWarbandCost(ctx, &engine.ComputeWarbandCostInput{
		Warband: out.Warband,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to cost warband %s", input.WarbandID)
	}

	return &warbandsvc.ComputeWarbandCostOutput{
		Total:       costOut.Total,
		WeirdoCosts: costOut.WeirdoCosts,
	}, nil
}

// ComputeWeirdoCost costs an inline weirdo under an ability.
func (o *Orchestrator) ComputeWeirdoCost(
	ctx context.Context,
	input *warbandsvc.ComputeWeirdoCostInput,
) (*warbandsvc.ComputeWeirdoCostOutput, error) {
	if input == nil || input.Weirdo == nil {
		return nil, errors.InvalidArgument("weirdo is required")
	}

	out, err := o.engine.ComputeWeirdoCost(ctx, &engine.ComputeWeirdoCostInput{
		Weirdo:  input.Weirdo,
		Ability: input.Ability,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cost weirdo")
	}

	return &warbandsvc.ComputeWeirdoCostOutput{
		Cost:      out.Cost,
		Breakdown: out.Breakdown,
	}, nil
}

// validate runs the engine over a warband and packages the result.
func (o *Orchestrator) validate(ctx context.Context, wb *weirdos.Warband) (*warbandsvc.ValidationState, error) {
	out, err := o.engine.ValidateWarband(ctx, &engine.ValidateWarbandInput{Warband: wb})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to validate warband %s", wb.ID)
	}

	return &warbandsvc.ValidationState{
		Valid:      out.Valid,
		Total:      out.Total,
		Violations: out.Violations,
	}, nil
}

// assignWeirdoIDs fills in IDs for weirdos that arrived without one.
func (o *Orchestrator) assignWeirdoIDs(wb *weirdos.Warband) {
	for i := range wb.Weirdos {
		if wb.Weirdos[i].ID == "" {
			wb.Weirdos[i].ID = o.idGenerator.Generate()
		}
	}
}

// excludeName removes the first case-insensitive match from a name snapshot.
func excludeName(all []string, name string) []string {
	out := make([]string, 0, len(all))
	excluded := false
	for _, n := range all {
		if !excluded && strings.EqualFold(strings.TrimSpace(n), strings.TrimSpace(name)) {
			excluded = true
			continue
		}
		out = append(out, n)
	}
	return out
}
