package engine

import (
	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
)

// ViolationCode identifies a rule violation. Codes are stable: clients key
// message rendering and localization off them, so they never change meaning.
type ViolationCode string

// Rule violation codes
const (
	// ViolationNameRequired fires when the warband has no name
	ViolationNameRequired ViolationCode = "VIOLATION_NAME_REQUIRED"
	// ViolationPointLimitInvalid fires when the point limit is not one of
	// the legal values
	ViolationPointLimitInvalid ViolationCode = "VIOLATION_POINT_LIMIT_INVALID"
	// ViolationAttributesIncomplete fires when a weirdo is missing one or
	// more attribute selections
	ViolationAttributesIncomplete ViolationCode = "VIOLATION_ATTRIBUTES_INCOMPLETE"
	// ViolationCloseWeaponRequired fires when a weirdo has no close-combat
	// weapon
	ViolationCloseWeaponRequired ViolationCode = "VIOLATION_CLOSE_WEAPON_REQUIRED"
	// ViolationRangedWithoutFirepower fires when a ranged weapon is carried
	// below the qualifying firepower levels
	ViolationRangedWithoutFirepower ViolationCode = "VIOLATION_RANGED_WITHOUT_FIREPOWER"
	// ViolationFirepowerWithoutRanged fires when a qualifying firepower
	// level has no ranged weapon to use it
	ViolationFirepowerWithoutRanged ViolationCode = "VIOLATION_FIREPOWER_WITHOUT_RANGED"
	// ViolationEquipmentLimitExceeded fires when a weirdo carries more
	// equipment than its kind and the warband ability allow
	ViolationEquipmentLimitExceeded ViolationCode = "VIOLATION_EQUIPMENT_LIMIT_EXCEEDED"
	// ViolationTraitNotAllowed fires when a leader trait is set on a trooper
	ViolationTraitNotAllowed ViolationCode = "VIOLATION_TRAIT_NOT_ALLOWED"
	// ViolationCostCeilingExceeded fires when any weirdo costs more than
	// the absolute per-weirdo ceiling
	ViolationCostCeilingExceeded ViolationCode = "VIOLATION_COST_CEILING_EXCEEDED"
	// ViolationSpecialSlotTaken fires on every weirdo after the first whose
	// cost lands in the special slot range
	ViolationSpecialSlotTaken ViolationCode = "VIOLATION_SPECIAL_SLOT_TAKEN"
	// ViolationPointLimitExceeded fires when the warband total exceeds its
	// point limit
	ViolationPointLimitExceeded ViolationCode = "VIOLATION_POINT_LIMIT_EXCEEDED"
)

// RuleViolation is one structured validation failure. Message is a rendered
// default; Meta carries the interpolated values so callers can render their
// own.
type RuleViolation struct {
	Code     ViolationCode          `json:"code"`
	WeirdoID string                 `json:"weirdo_id,omitempty"`
	Message  string                 `json:"message"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// CostBreakdown splits a weirdo's cost by source group.
type CostBreakdown struct {
	Attributes int32 `json:"attributes"`
	Weapons    int32 `json:"weapons"`
	Equipment  int32 `json:"equipment"`
}

// Total returns the summed breakdown.
func (b CostBreakdown) Total() int32 {
	return b.Attributes + b.Weapons + b.Equipment
}

// WeirdoCost pairs a weirdo with its computed cost.
type WeirdoCost struct {
	WeirdoID  string        `json:"weirdo_id"`
	Cost      int32         `json:"cost"`
	Breakdown CostBreakdown `json:"breakdown"`
}

// ComputeWeirdoCostInput defines the input for ComputeWeirdoCost
type ComputeWeirdoCostInput struct {
	Weirdo  *weirdos.Weirdo
	Ability weirdos.Ability
}

// ComputeWeirdoCostOutput defines the output for ComputeWeirdoCost
type ComputeWeirdoCostOutput struct {
	Cost      int32
	Breakdown CostBreakdown
}

// ComputeWarbandCostInput defines the input for ComputeWarbandCost
type ComputeWarbandCostInput struct {
	Warband *weirdos.Warband
}

// ComputeWarbandCostOutput defines the output for ComputeWarbandCost
type ComputeWarbandCostOutput struct {
	Total       int32
	WeirdoCosts []WeirdoCost
}

// ValidateWeirdoInput defines the input for ValidateWeirdo
type ValidateWeirdoInput struct {
	Weirdo  *weirdos.Weirdo
	Ability weirdos.Ability
}

// ValidateWeirdoOutput defines the output for ValidateWeirdo
type ValidateWeirdoOutput struct {
	Violations []RuleViolation
}

// ValidateWarbandInput defines the input for ValidateWarband
type ValidateWarbandInput struct {
	Warband *weirdos.Warband
}

// ValidateWarbandOutput defines the output for ValidateWarband
type ValidateWarbandOutput struct {
	Valid      bool
	Total      int32
	Violations []RuleViolation
}
