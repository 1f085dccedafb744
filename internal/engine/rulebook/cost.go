package rulebook

import (
	"github.com/KirkDiggler/warband-api/internal/clients/catalog"
	"github.com/KirkDiggler/warband-api/internal/engine"
	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
)

// costStrategy is the per-ability cost modifier. Every function is total and
// never returns a negative cost.
type costStrategy interface {
	weaponCost(info *catalog.WeaponInfo) int32
	equipmentCost(info *catalog.EquipmentInfo) int32
	attributeCost(kind weirdos.AttributeKind, level weirdos.AttributeLevel, base int32) int32
}

// strategyFor maps an ability to its cost strategy. Unknown or future
// abilities deliberately fall back to the identity strategy so cost
// computation stays total; Cyborgs lands there too since it only changes
// equipment limits.
func strategyFor(ability weirdos.Ability) costStrategy {
	switch ability {
	case weirdos.AbilityMutants:
		return mutantsStrategy{}
	case weirdos.AbilityHeavilyArmed:
		return heavilyArmedStrategy{}
	case weirdos.AbilitySoldiers:
		return soldiersStrategy{}
	default:
		return identityStrategy{}
	}
}

func clampCost(cost int32) int32 {
	if cost < 0 {
		return 0
	}
	return cost
}

// identityStrategy leaves every base cost unchanged.
type identityStrategy struct{}

func (identityStrategy) weaponCost(info *catalog.WeaponInfo) int32 {
	return info.BaseCost
}

func (identityStrategy) equipmentCost(info *catalog.EquipmentInfo) int32 {
	return info.BaseCost
}

func (identityStrategy) attributeCost(_ weirdos.AttributeKind, _ weirdos.AttributeLevel, base int32) int32 {
	return base
}

// mutantsStrategy discounts speed and a fixed set of natural close weapons.
type mutantsStrategy struct{}

// mutantWeapons are the close-combat weapons Mutants get at a discount,
// keyed by catalog name.
var mutantWeapons = map[string]struct{}{
	"Claws & Teeth":          {},
	"Horrible Claws & Teeth": {},
	"Whip/Tail":              {},
}

func (mutantsStrategy) weaponCost(info *catalog.WeaponInfo) int32 {
	if info.Class != weirdos.WeaponClassClose {
		return info.BaseCost
	}
	if _, ok := mutantWeapons[info.Name]; !ok {
		return info.BaseCost
	}
	return clampCost(info.BaseCost - 1)
}

func (mutantsStrategy) equipmentCost(info *catalog.EquipmentInfo) int32 {
	return info.BaseCost
}

func (mutantsStrategy) attributeCost(kind weirdos.AttributeKind, _ weirdos.AttributeLevel, base int32) int32 {
	if kind != weirdos.AttributeSpeed {
		return base
	}
	return clampCost(base - 1)
}

// heavilyArmedStrategy discounts every ranged weapon by one point.
type heavilyArmedStrategy struct{}

func (heavilyArmedStrategy) weaponCost(info *catalog.WeaponInfo) int32 {
	if info.Class != weirdos.WeaponClassRanged {
		return info.BaseCost
	}
	return clampCost(info.BaseCost - 1)
}

func (heavilyArmedStrategy) equipmentCost(info *catalog.EquipmentInfo) int32 {
	return info.BaseCost
}

func (heavilyArmedStrategy) attributeCost(_ weirdos.AttributeKind, _ weirdos.AttributeLevel, base int32) int32 {
	return base
}

// soldiersStrategy makes a fixed set of equipment free. This is an override,
// not a delta: the items cost zero whatever their base cost.
type soldiersStrategy struct{}

// soldierKit is the equipment Soldiers field for free.
var soldierKit = map[string]struct{}{
	"Grenade":     {},
	"Heavy Armor": {},
	"Medkit":      {},
}

func (soldiersStrategy) weaponCost(info *catalog.WeaponInfo) int32 {
	return info.BaseCost
}

func (soldiersStrategy) equipmentCost(info *catalog.EquipmentInfo) int32 {
	if _, ok := soldierKit[info.Name]; ok {
		return 0
	}
	return info.BaseCost
}

func (soldiersStrategy) attributeCost(_ weirdos.AttributeKind, _ weirdos.AttributeLevel, base int32) int32 {
	return base
}

// weirdoCost sums discounted attribute, weapon, and equipment costs.
// Unselected attributes contribute nothing here; completeness is the
// validator's job, and costing the partial selection lets a single
// validation pass report both problems.
func (a *Adapter) weirdoCost(w *weirdos.Weirdo, ability weirdos.Ability) (engine.CostBreakdown, error) {
	strategy := strategyFor(ability)

	var breakdown engine.CostBreakdown

	for _, kind := range weirdos.AttributeKinds {
		level, ok := w.AttributeLevelFor(kind)
		if !ok {
			continue
		}
		base, err := a.catalog.AttributeCost(kind, level)
		if err != nil {
			return engine.CostBreakdown{}, err
		}
		breakdown.Attributes += strategy.attributeCost(kind, level, base)
	}

	for _, name := range w.Weapons {
		info, err := a.catalog.WeaponInfo(name)
		if err != nil {
			return engine.CostBreakdown{}, err
		}
		breakdown.Weapons += strategy.weaponCost(info)
	}

	for _, name := range w.Equipment {
		info, err := a.catalog.EquipmentInfo(name)
		if err != nil {
			return engine.CostBreakdown{}, err
		}
		breakdown.Equipment += strategy.equipmentCost(info)
	}

	return breakdown, nil
}
