// Package weirdos defines the warband domain entities.
//
// Entities are plain data handed to the rules engine as immutable snapshots;
// nothing here computes costs or enforces legality. Derived values (weirdo
// cost, warband cost, rule violations) come from the engine.
package weirdos

import "strings"

// Weirdo is a single character model in a warband.
type Weirdo struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Kind WeirdoKind `json:"kind"`

	// Attributes maps each attribute kind to its selected level. A missing
	// key means the attribute has not been selected yet; that is a distinct
	// invalid state, not a default.
	Attributes map[AttributeKind]AttributeLevel `json:"attributes"`

	// Weapons holds catalog weapon names. Close versus ranged is a property
	// of the catalog entry, not of the selection.
	Weapons []string `json:"weapons"`

	// Equipment holds catalog equipment names.
	Equipment []string `json:"equipment,omitempty"`

	// LeaderTrait is only legal on a leader.
	LeaderTrait LeaderTrait `json:"leader_trait,omitempty"`
}

// AttributeLevelFor returns the selected level for a kind and whether one
// has been selected.
func (w *Weirdo) AttributeLevelFor(kind AttributeKind) (AttributeLevel, bool) {
	level, ok := w.Attributes[kind]
	return level, ok
}

// MissingAttributes returns the attribute kinds without a selection, in
// display order.
func (w *Weirdo) MissingAttributes() []AttributeKind {
	var missing []AttributeKind
	for _, kind := range AttributeKinds {
		if _, ok := w.Attributes[kind]; !ok {
			missing = append(missing, kind)
		}
	}
	return missing
}

// Warband is a player's full roster plus its point-limit and ability
// selection. Weirdo order is significant: the first weirdo whose cost lands
// in the special slot range occupies the slot.
type Warband struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PointLimit int32    `json:"point_limit"`
	Ability    Ability  `json:"ability,omitempty"`
	Weirdos    []Weirdo `json:"weirdos"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// Leader returns the first leader-kind weirdo, or nil if none exists.
func (wb *Warband) Leader() *Weirdo {
	for i := range wb.Weirdos {
		if wb.Weirdos[i].Kind == KindLeader {
			return &wb.Weirdos[i]
		}
	}
	return nil
}

// WeirdoByID returns the weirdo with the given ID, or nil.
func (wb *Warband) WeirdoByID(id string) *Weirdo {
	for i := range wb.Weirdos {
		if wb.Weirdos[i].ID == id {
			return &wb.Weirdos[i]
		}
	}
	return nil
}

// NameKey returns the case-insensitive key used for name uniqueness.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
