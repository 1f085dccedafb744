package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/warband-api/internal/clients/catalog"
	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
	"github.com/KirkDiggler/warband-api/internal/errors"
)

const houseRuledCatalog = `
weapons:
  - name: Club
    class: close
    cost: 1
  - name: Crossbow
    class: ranged
    cost: 3
equipment:
  - name: Lantern
    cost: 1
attributes:
  speed: {d6: 1, d8: 2, d10: 4, d12: 6}
  defense: {d6: 1, d8: 2, d10: 4, d12: 6}
  firepower: {none: 0, d6: 1, d8: 2, d10: 4, d12: 6}
  prowess: {d6: 1, d8: 2, d10: 4, d12: 6}
  willpower: {d6: 2, d8: 3, d10: 5, d12: 7}
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	c, err := catalog.LoadFile(writeCatalog(t, houseRuledCatalog))
	require.NoError(t, err)

	crossbow, err := c.WeaponInfo("Crossbow")
	require.NoError(t, err)
	assert.Equal(t, weirdos.WeaponClassRanged, crossbow.Class)
	assert.Equal(t, int32(3), crossbow.BaseCost)

	lantern, err := c.EquipmentInfo("Lantern")
	require.NoError(t, err)
	assert.Equal(t, int32(1), lantern.BaseCost)

	// House-ruled willpower pricing comes through as written.
	cost, err := c.AttributeCost(weirdos.AttributeWillpower, weirdos.LevelD10)
	require.NoError(t, err)
	assert.Equal(t, int32(5), cost)
}

func TestLoadFileEmptyPath(t *testing.T) {
	_, err := catalog.LoadFile("")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	_, err := catalog.LoadFile(writeCatalog(t, "weapons: [oops"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadFileIncomplete(t *testing.T) {
	incomplete := `
weapons:
  - name: Club
    class: close
    cost: 1
attributes:
  speed: {d6: 1, d8: 2, d10: 4, d12: 6}
`
	_, err := catalog.LoadFile(writeCatalog(t, incomplete))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
