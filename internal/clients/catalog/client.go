// Package catalog supplies the game reference data: weapon, equipment, and
// attribute base costs plus the fixed ability and trait enumerations.
//
// The catalog is the cost engine's only collaborator. Lookups are total over
// the loaded tables; an unknown key is a data-integrity error
// (errors.CodeInternal), never a zero cost.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/warband-api/internal/clients/catalog Client

import (
	"sort"

	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
	"github.com/KirkDiggler/warband-api/internal/errors"
)

// WeaponInfo describes a catalog weapon.
type WeaponInfo struct {
	Name     string              `json:"name" yaml:"name"`
	Class    weirdos.WeaponClass `json:"class" yaml:"class"`
	BaseCost int32               `json:"base_cost" yaml:"cost"`
}

// EquipmentInfo describes a catalog equipment item.
type EquipmentInfo struct {
	Name     string `json:"name" yaml:"name"`
	BaseCost int32  `json:"base_cost" yaml:"cost"`
}

// Client defines the reference-data lookup interface
type Client interface {
	// WeaponInfo returns the catalog entry for a weapon name
	WeaponInfo(name string) (*WeaponInfo, error)

	// EquipmentInfo returns the catalog entry for an equipment name
	EquipmentInfo(name string) (*EquipmentInfo, error)

	// AttributeCost returns the base cost of an attribute at a level
	AttributeCost(kind weirdos.AttributeKind, level weirdos.AttributeLevel) (int32, error)

	// ListWeapons returns every catalog weapon, sorted by name
	ListWeapons() []WeaponInfo

	// ListEquipment returns every catalog equipment item, sorted by name
	ListEquipment() []EquipmentInfo
}

// static is an in-memory catalog built from fixed tables.
type static struct {
	weapons    map[string]WeaponInfo
	equipment  map[string]EquipmentInfo
	attributes map[weirdos.AttributeKind]map[weirdos.AttributeLevel]int32
}

// Config holds the tables for a static catalog.
type Config struct {
	Weapons    []WeaponInfo
	Equipment  []EquipmentInfo
	Attributes map[weirdos.AttributeKind]map[weirdos.AttributeLevel]int32
}

// Validate ensures the tables cover the fixed enumerations.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if len(cfg.Weapons) == 0 {
		return errors.InvalidArgument("catalog requires at least one weapon")
	}
	for _, w := range cfg.Weapons {
		if w.Name == "" {
			return errors.InvalidArgument("weapon name cannot be empty")
		}
		if w.Class != weirdos.WeaponClassClose && w.Class != weirdos.WeaponClassRanged {
			return errors.InvalidArgumentf("weapon %q has unknown class %q", w.Name, w.Class)
		}
		if w.BaseCost < 0 {
			return errors.InvalidArgumentf("weapon %q has negative cost %d", w.Name, w.BaseCost)
		}
	}
	for _, e := range cfg.Equipment {
		if e.Name == "" {
			return errors.InvalidArgument("equipment name cannot be empty")
		}
		if e.BaseCost < 0 {
			return errors.InvalidArgumentf("equipment %q has negative cost %d", e.Name, e.BaseCost)
		}
	}
	for _, kind := range weirdos.AttributeKinds {
		levels, ok := cfg.Attributes[kind]
		if !ok {
			return errors.InvalidArgumentf("catalog missing attribute table for %q", kind)
		}
		required := []weirdos.AttributeLevel{weirdos.LevelD6, weirdos.LevelD8, weirdos.LevelD10, weirdos.LevelD12}
		if kind == weirdos.AttributeFirepower {
			required = append(required, weirdos.LevelNone)
		}
		for _, level := range required {
			cost, ok := levels[level]
			if !ok {
				return errors.InvalidArgumentf("catalog missing cost for %s %s", kind, level)
			}
			if cost < 0 {
				return errors.InvalidArgumentf("negative cost for %s %s", kind, level)
			}
		}
	}
	return nil
}

// New creates a catalog client from explicit tables.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &static{
		weapons:    make(map[string]WeaponInfo, len(cfg.Weapons)),
		equipment:  make(map[string]EquipmentInfo, len(cfg.Equipment)),
		attributes: make(map[weirdos.AttributeKind]map[weirdos.AttributeLevel]int32, len(cfg.Attributes)),
	}
	for _, w := range cfg.Weapons {
		c.weapons[w.Name] = w
	}
	for _, e := range cfg.Equipment {
		c.equipment[e.Name] = e
	}
	for kind, levels := range cfg.Attributes {
		table := make(map[weirdos.AttributeLevel]int32, len(levels))
		for level, cost := range levels {
			table[level] = cost
		}
		c.attributes[kind] = table
	}
	return c, nil
}

// NewDefault creates a catalog client backed by the built-in tables.
func NewDefault() Client {
	c, err := New(defaultConfig())
	if err != nil {
		// The built-in tables are compiled in; failing to load them is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}

func (c *static) WeaponInfo(name string) (*WeaponInfo, error) {
	info, ok := c.weapons[name]
	if !ok {
		return nil, errors.Internalf("unknown weapon %q", name).
			WithMeta("weapon", name)
	}
	return &info, nil
}

func (c *static) EquipmentInfo(name string) (*EquipmentInfo, error) {
	info, ok := c.equipment[name]
	if !ok {
		return nil, errors.Internalf("unknown equipment %q", name).
			WithMeta("equipment", name)
	}
	return &info, nil
}

func (c *static) AttributeCost(kind weirdos.AttributeKind, level weirdos.AttributeLevel) (int32, error) {
	levels, ok := c.attributes[kind]
	if !ok {
		return 0, errors.Internalf("unknown attribute kind %q", kind).
			WithMeta("attribute", string(kind))
	}
	cost, ok := levels[level]
	if !ok {
		return 0, errors.Internalf("no cost for attribute %s at level %s", kind, level).
			WithMeta("attribute", string(kind)).
			WithMeta("level", string(level))
	}
	return cost, nil
}

func (c *static) ListWeapons() []WeaponInfo {
	out := make([]WeaponInfo, 0, len(c.weapons))
	for _, w := range c.weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *static) ListEquipment() []EquipmentInfo {
	out := make([]EquipmentInfo, 0, len(c.equipment))
	for _, e := range c.equipment {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
