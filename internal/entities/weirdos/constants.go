package weirdos

// AttributeKind identifies one of the five weirdo attributes
type AttributeKind string

// Attribute kinds
const (
	AttributeSpeed     AttributeKind = "speed"
	AttributeDefense   AttributeKind = "defense"
	AttributeFirepower AttributeKind = "firepower"
	AttributeProwess   AttributeKind = "prowess"
	AttributeWillpower AttributeKind = "willpower"
)

// AttributeKinds lists every attribute kind a complete weirdo must select,
// in display order.
var AttributeKinds = []AttributeKind{
	AttributeSpeed,
	AttributeDefense,
	AttributeFirepower,
	AttributeProwess,
	AttributeWillpower,
}

// AttributeLevel is a selected die rating for an attribute
type AttributeLevel string

// Attribute levels, ordered weakest to strongest. LevelNone is only legal
// for firepower.
const (
	LevelNone AttributeLevel = "none"
	LevelD6   AttributeLevel = "d6"
	LevelD8   AttributeLevel = "d8"
	LevelD10  AttributeLevel = "d10"
	LevelD12  AttributeLevel = "d12"
)

// RangedFirepowerLevels are the firepower ratings that permit (and require)
// a ranged weapon.
var RangedFirepowerLevels = []AttributeLevel{LevelD10, LevelD12}

// WeaponClass separates close-combat from ranged weapons
type WeaponClass string

// Weapon classes
const (
	WeaponClassClose  WeaponClass = "close"
	WeaponClassRanged WeaponClass = "ranged"
)

// WeirdoKind distinguishes the warband leader from troopers
type WeirdoKind string

// Weirdo kinds
const (
	KindLeader  WeirdoKind = "leader"
	KindTrooper WeirdoKind = "trooper"
)

// Ability is a warband-wide perk altering cost or equipment rules
type Ability string

// Warband abilities. AbilityNone is the zero value and means no perk.
const (
	AbilityNone         Ability = ""
	AbilityMutants      Ability = "ABILITY_MUTANTS"
	AbilityHeavilyArmed Ability = "ABILITY_HEAVILY_ARMED"
	AbilitySoldiers     Ability = "ABILITY_SOLDIERS"
	AbilityCyborgs      Ability = "ABILITY_CYBORGS"
)

// Abilities lists every selectable warband ability.
var Abilities = []Ability{
	AbilityMutants,
	AbilityHeavilyArmed,
	AbilitySoldiers,
	AbilityCyborgs,
}

// LeaderTrait is a perk assignable only to the leader
type LeaderTrait string

// Leader traits
const (
	TraitNone      LeaderTrait = ""
	TraitBold      LeaderTrait = "TRAIT_BOLD"
	TraitCunning   LeaderTrait = "TRAIT_CUNNING"
	TraitInspiring LeaderTrait = "TRAIT_INSPIRING"
	TraitRuthless  LeaderTrait = "TRAIT_RUTHLESS"
	TraitStoic     LeaderTrait = "TRAIT_STOIC"
)

// LeaderTraits lists every assignable leader trait.
var LeaderTraits = []LeaderTrait{
	TraitBold,
	TraitCunning,
	TraitInspiring,
	TraitRuthless,
	TraitStoic,
}

// Point rules
const (
	// PointLimitSkirmish is the small-game warband point limit
	PointLimitSkirmish int32 = 75
	// PointLimitBattle is the large-game warband point limit
	PointLimitBattle int32 = 125

	// WeirdoCostCeiling is the absolute per-weirdo cost ceiling
	WeirdoCostCeiling int32 = 25
	// SpecialSlotFloor is the lowest cost that occupies the special slot;
	// a single weirdo per warband may cost SpecialSlotFloor..WeirdoCostCeiling
	SpecialSlotFloor int32 = 21
	// StandardCostCap applies to every weirdo outside the special slot
	StandardCostCap int32 = 20
)

// PointLimits lists the legal warband point limits.
var PointLimits = []int32{PointLimitSkirmish, PointLimitBattle}

// Equipment count limits by weirdo kind; Cyborgs warbands get one extra slot
const (
	LeaderEquipmentLimit       = 2
	TrooperEquipmentLimit      = 1
	CyborgsExtraEquipmentSlots = 1
)

// EquipmentLimit returns the equipment-count ceiling for a weirdo of the
// given kind under the given warband ability.
func EquipmentLimit(kind WeirdoKind, ability Ability) int {
	limit := TrooperEquipmentLimit
	if kind == KindLeader {
		limit = LeaderEquipmentLimit
	}
	if ability == AbilityCyborgs {
		limit += CyborgsExtraEquipmentSlots
	}
	return limit
}

// ValidPointLimit reports whether the given value is a legal point limit.
func ValidPointLimit(limit int32) bool {
	for _, l := range PointLimits {
		if limit == l {
			return true
		}
	}
	return false
}

// QualifiesForRanged reports whether a firepower level permits ranged weapons.
func QualifiesForRanged(level AttributeLevel) bool {
	for _, l := range RangedFirepowerLevels {
		if level == l {
			return true
		}
	}
	return false
}
