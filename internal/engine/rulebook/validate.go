package rulebook

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/warband-api/internal/engine"
	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
)

// validateWeirdo runs the per-weirdo rules in fixed order: attribute
// completeness, close-combat requirement, ranged/firepower coherence,
// equipment limit, leader-trait eligibility. It never short-circuits.
func (a *Adapter) validateWeirdo(w *weirdos.Weirdo, ability weirdos.Ability) ([]engine.RuleViolation, error) {
	violations := make([]engine.RuleViolation, 0)

	if missing := w.MissingAttributes(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, kind := range missing {
			names[i] = string(kind)
		}
		violations = append(violations, engine.RuleViolation{
			Code:     engine.ViolationAttributesIncomplete,
			WeirdoID: w.ID,
			Message:  fmt.Sprintf("%s is missing attributes: %s", displayName(w), strings.Join(names, ", ")),
			Meta: map[string]interface{}{
				"missing": names,
			},
		})
	}

	closeCount, rangedNames, err := a.partitionWeapons(w.Weapons)
	if err != nil {
		return nil, err
	}

	if closeCount == 0 {
		violations = append(violations, engine.RuleViolation{
			Code:     engine.ViolationCloseWeaponRequired,
			WeirdoID: w.ID,
			Message:  fmt.Sprintf("%s needs at least one close-combat weapon", displayName(w)),
		})
	}

	// Ranged coherence is symmetric: a ranged weapon demands qualifying
	// firepower, and qualifying firepower demands a ranged weapon.
	firepower, selected := w.AttributeLevelFor(weirdos.AttributeFirepower)
	qualifies := selected && weirdos.QualifiesForRanged(firepower)
	if len(rangedNames) > 0 && !qualifies {
		level := "unselected"
		if selected {
			level = string(firepower)
		}
		violations = append(violations, engine.RuleViolation{
			Code:     engine.ViolationRangedWithoutFirepower,
			WeirdoID: w.ID,
			Message: fmt.Sprintf("%s carries ranged weapons but firepower is %s",
				displayName(w), level),
			Meta: map[string]interface{}{
				"firepower":      level,
				"ranged_weapons": rangedNames,
			},
		})
	}
	if qualifies && len(rangedNames) == 0 {
		violations = append(violations, engine.RuleViolation{
			Code:     engine.ViolationFirepowerWithoutRanged,
			WeirdoID: w.ID,
			Message: fmt.Sprintf("%s has firepower %s but no ranged weapon",
				displayName(w), firepower),
			Meta: map[string]interface{}{
				"firepower": string(firepower),
			},
		})
	}

	limit := weirdos.EquipmentLimit(w.Kind, ability)
	if len(w.Equipment) > limit {
		violations = append(violations, engine.RuleViolation{
			Code:     engine.ViolationEquipmentLimitExceeded,
			WeirdoID: w.ID,
			Message: fmt.Sprintf("%s carries %d equipment items, limit is %d",
				displayName(w), len(w.Equipment), limit),
			Meta: map[string]interface{}{
				"count": len(w.Equipment),
				"limit": limit,
			},
		})
	}

	if w.LeaderTrait != weirdos.TraitNone && w.Kind != weirdos.KindLeader {
		violations = append(violations, engine.RuleViolation{
			Code:     engine.ViolationTraitNotAllowed,
			WeirdoID: w.ID,
			Message: fmt.Sprintf("%s is a %s and cannot have leader trait %s",
				displayName(w), w.Kind, w.LeaderTrait),
			Meta: map[string]interface{}{
				"trait": string(w.LeaderTrait),
				"kind":  string(w.Kind),
			},
		})
	}

	return violations, nil
}

// validateWarband runs the full rule set: warband-name presence, point-limit
// legality, per-weirdo rules in weirdo order, cross-weirdo slot and ceiling
// rules, then the warband total. The order only fixes output determinism;
// every rule runs regardless of earlier failures.
func (a *Adapter) validateWarband(wb *weirdos.Warband) (*engine.ValidateWarbandOutput, error) {
	violations := make([]engine.RuleViolation, 0)

	if strings.TrimSpace(wb.Name) == "" {
		violations = append(violations, engine.RuleViolation{
			Code:    engine.ViolationNameRequired,
			Message: "warband name is required",
		})
	}

	limitLegal := weirdos.ValidPointLimit(wb.PointLimit)
	if !limitLegal {
		violations = append(violations, engine.RuleViolation{
			Code: engine.ViolationPointLimitInvalid,
			Message: fmt.Sprintf("point limit %d is not legal, choose %d or %d",
				wb.PointLimit, weirdos.PointLimitSkirmish, weirdos.PointLimitBattle),
			Meta: map[string]interface{}{
				"point_limit": wb.PointLimit,
				"allowed":     weirdos.PointLimits,
			},
		})
	}

	for i := range wb.Weirdos {
		weirdoViolations, err := a.validateWeirdo(&wb.Weirdos[i], wb.Ability)
		if err != nil {
			return nil, err
		}
		violations = append(violations, weirdoViolations...)
	}

	costs, err := a.warbandCosts(wb)
	if err != nil {
		return nil, err
	}

	violations = append(violations, specialSlotViolations(wb, costs)...)

	var total int32
	for _, wc := range costs {
		total += wc.Cost
	}
	// With an illegal limit there is no ceiling to compare against; the
	// limit violation above already covers it.
	if limitLegal && total > wb.PointLimit {
		violations = append(violations, engine.RuleViolation{
			Code: engine.ViolationPointLimitExceeded,
			Message: fmt.Sprintf("warband costs %d points, limit is %d",
				total, wb.PointLimit),
			Meta: map[string]interface{}{
				"total":       total,
				"point_limit": wb.PointLimit,
			},
		})
	}

	return &engine.ValidateWarbandOutput{
		Valid:      len(violations) == 0,
		Total:      total,
		Violations: violations,
	}, nil
}

// specialSlotViolations enforces the per-weirdo cost ceiling and the single
// special slot. Two passes over warband order: the first weirdo costing
// 21-25 wins the slot, every later weirdo in that range is the one blamed.
// The open interval (20,21) is unreachable with integer costs, so the "all
// others at most 20" cap needs no check of its own.
func specialSlotViolations(wb *weirdos.Warband, costs []engine.WeirdoCost) []engine.RuleViolation {
	occupant := -1
	for i, wc := range costs {
		if wc.Cost >= weirdos.SpecialSlotFloor && wc.Cost <= weirdos.WeirdoCostCeiling {
			occupant = i
			break
		}
	}

	violations := make([]engine.RuleViolation, 0)
	for i, wc := range costs {
		w := &wb.Weirdos[i]
		switch {
		case wc.Cost > weirdos.WeirdoCostCeiling:
			violations = append(violations, engine.RuleViolation{
				Code:     engine.ViolationCostCeilingExceeded,
				WeirdoID: w.ID,
				Message: fmt.Sprintf("%s costs %d points, ceiling is %d",
					displayName(w), wc.Cost, weirdos.WeirdoCostCeiling),
				Meta: map[string]interface{}{
					"cost":    wc.Cost,
					"ceiling": weirdos.WeirdoCostCeiling,
				},
			})
		case i != occupant && wc.Cost >= weirdos.SpecialSlotFloor:
			// The range check above means occupant is set by the time
			// anything lands here.
			violations = append(violations, engine.RuleViolation{
				Code:     engine.ViolationSpecialSlotTaken,
				WeirdoID: w.ID,
				Message: fmt.Sprintf("%s costs %d points but the %d-%d slot is already taken by %s",
					displayName(w), wc.Cost, weirdos.SpecialSlotFloor,
					weirdos.WeirdoCostCeiling, displayName(&wb.Weirdos[occupant])),
				Meta: map[string]interface{}{
					"cost":        wc.Cost,
					"cap":         weirdos.StandardCostCap,
					"occupant_id": wb.Weirdos[occupant].ID,
				},
			})
		}
	}
	return violations
}

// partitionWeapons counts close-combat weapons and collects ranged weapon
// names, resolving classes through the catalog.
func (a *Adapter) partitionWeapons(names []string) (closeCount int, ranged []string, err error) {
	for _, name := range names {
		info, err := a.catalog.WeaponInfo(name)
		if err != nil {
			return 0, nil, err
		}
		if info.Class == weirdos.WeaponClassRanged {
			ranged = append(ranged, name)
		} else {
			closeCount++
		}
	}
	return closeCount, ranged, nil
}

// displayName prefers the weirdo's name for messages, falling back to the ID.
func displayName(w *weirdos.Weirdo) string {
	if w.Name != "" {
		return w.Name
	}
	if w.ID != "" {
		return w.ID
	}
	return "weirdo"
}
