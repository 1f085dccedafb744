package catalog

import "github.com/KirkDiggler/warband-api/internal/entities/weirdos"

// Built-in reference data. Names referenced by the ability cost strategies
// ("Claws & Teeth", "Grenade", ...) must stay in sync with the rulebook
// package's discount lists.

func defaultConfig() *Config {
	return &Config{
		Weapons: []WeaponInfo{
			// Close combat
			{Name: "Unarmed", Class: weirdos.WeaponClassClose, BaseCost: 0},
			{Name: "Knife", Class: weirdos.WeaponClassClose, BaseCost: 1},
			{Name: "Whip/Tail", Class: weirdos.WeaponClassClose, BaseCost: 2},
			{Name: "Spear", Class: weirdos.WeaponClassClose, BaseCost: 2},
			{Name: "Claws & Teeth", Class: weirdos.WeaponClassClose, BaseCost: 3},
			{Name: "Sword", Class: weirdos.WeaponClassClose, BaseCost: 3},
			{Name: "Great Weapon", Class: weirdos.WeaponClassClose, BaseCost: 4},
			{Name: "Horrible Claws & Teeth", Class: weirdos.WeaponClassClose, BaseCost: 5},
			{Name: "Power Fist", Class: weirdos.WeaponClassClose, BaseCost: 5},

			// Ranged
			{Name: "Pistol", Class: weirdos.WeaponClassRanged, BaseCost: 2},
			{Name: "Shotgun", Class: weirdos.WeaponClassRanged, BaseCost: 3},
			{Name: "Rifle", Class: weirdos.WeaponClassRanged, BaseCost: 4},
			{Name: "Energy Beam", Class: weirdos.WeaponClassRanged, BaseCost: 4},
			{Name: "Flamethrower", Class: weirdos.WeaponClassRanged, BaseCost: 5},
			{Name: "Sniper Rifle", Class: weirdos.WeaponClassRanged, BaseCost: 5},
			{Name: "Heavy Machine Gun", Class: weirdos.WeaponClassRanged, BaseCost: 6},
			{Name: "Grenade Launcher", Class: weirdos.WeaponClassRanged, BaseCost: 6},
		},
		Equipment: []EquipmentInfo{
			{Name: "Scanner", BaseCost: 1},
			{Name: "Light Armor", BaseCost: 1},
			{Name: "Shield", BaseCost: 1},
			{Name: "Grenade", BaseCost: 2},
			{Name: "Medkit", BaseCost: 2},
			{Name: "Camo Cloak", BaseCost: 2},
			{Name: "Heavy Armor", BaseCost: 3},
			{Name: "Jetpack", BaseCost: 3},
		},
		Attributes: map[weirdos.AttributeKind]map[weirdos.AttributeLevel]int32{
			weirdos.AttributeSpeed:     standardAttributeCosts(),
			weirdos.AttributeDefense:   standardAttributeCosts(),
			weirdos.AttributeProwess:   standardAttributeCosts(),
			weirdos.AttributeWillpower: standardAttributeCosts(),
			weirdos.AttributeFirepower: {
				weirdos.LevelNone: 0,
				weirdos.LevelD6:   1,
				weirdos.LevelD8:   2,
				weirdos.LevelD10:  4,
				weirdos.LevelD12:  6,
			},
		},
	}
}

func standardAttributeCosts() map[weirdos.AttributeLevel]int32 {
	return map[weirdos.AttributeLevel]int32{
		weirdos.LevelD6:  1,
		weirdos.LevelD8:  2,
		weirdos.LevelD10: 4,
		weirdos.LevelD12: 6,
	}
}
