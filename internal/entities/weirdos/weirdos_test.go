package weirdos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
)

func TestEquipmentLimit(t *testing.T) {
	tests := []struct {
		name    string
		kind    weirdos.WeirdoKind
		ability weirdos.Ability
		want    int
	}{
		{"trooper", weirdos.KindTrooper, weirdos.AbilityNone, 1},
		{"leader", weirdos.KindLeader, weirdos.AbilityNone, 2},
		{"cyborg trooper", weirdos.KindTrooper, weirdos.AbilityCyborgs, 2},
		{"cyborg leader", weirdos.KindLeader, weirdos.AbilityCyborgs, 3},
		{"other abilities do not change limits", weirdos.KindTrooper, weirdos.AbilityMutants, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weirdos.EquipmentLimit(tt.kind, tt.ability))
		})
	}
}

func TestValidPointLimit(t *testing.T) {
	assert.True(t, weirdos.ValidPointLimit(75))
	assert.True(t, weirdos.ValidPointLimit(125))
	assert.False(t, weirdos.ValidPointLimit(0))
	assert.False(t, weirdos.ValidPointLimit(100))
	assert.False(t, weirdos.ValidPointLimit(-75))
}

func TestQualifiesForRanged(t *testing.T) {
	assert.False(t, weirdos.QualifiesForRanged(weirdos.LevelNone))
	assert.False(t, weirdos.QualifiesForRanged(weirdos.LevelD6))
	assert.False(t, weirdos.QualifiesForRanged(weirdos.LevelD8))
	assert.True(t, weirdos.QualifiesForRanged(weirdos.LevelD10))
	assert.True(t, weirdos.QualifiesForRanged(weirdos.LevelD12))
}

func TestMissingAttributes(t *testing.T) {
	w := &weirdos.Weirdo{
		Attributes: map[weirdos.AttributeKind]weirdos.AttributeLevel{
			weirdos.AttributeSpeed:   weirdos.LevelD6,
			weirdos.AttributeProwess: weirdos.LevelD8,
		},
	}

	assert.Equal(t, []weirdos.AttributeKind{
		weirdos.AttributeDefense,
		weirdos.AttributeFirepower,
		weirdos.AttributeWillpower,
	}, w.MissingAttributes())

	complete := &weirdos.Weirdo{
		Attributes: map[weirdos.AttributeKind]weirdos.AttributeLevel{
			weirdos.AttributeSpeed:     weirdos.LevelD6,
			weirdos.AttributeDefense:   weirdos.LevelD6,
			weirdos.AttributeFirepower: weirdos.LevelNone,
			weirdos.AttributeProwess:   weirdos.LevelD6,
			weirdos.AttributeWillpower: weirdos.LevelD6,
		},
	}
	assert.Empty(t, complete.MissingAttributes())
}

func TestWarbandLeader(t *testing.T) {
	wb := &weirdos.Warband{
		Weirdos: []weirdos.Weirdo{
			{ID: "t1", Kind: weirdos.KindTrooper},
			{ID: "l1", Kind: weirdos.KindLeader},
		},
	}

	leader := wb.Leader()
	assert.NotNil(t, leader)
	assert.Equal(t, "l1", leader.ID)

	assert.Nil(t, (&weirdos.Warband{}).Leader())
}

func TestWeirdoByID(t *testing.T) {
	wb := &weirdos.Warband{
		Weirdos: []weirdos.Weirdo{{ID: "t1"}, {ID: "t2"}},
	}

	assert.Equal(t, "t2", wb.WeirdoByID("t2").ID)
	assert.Nil(t, wb.WeirdoByID("t3"))
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, "the breakers", weirdos.NameKey("  The Breakers "))
	assert.Equal(t, weirdos.NameKey("ALPHA"), weirdos.NameKey("alpha"))
}
