package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
	"github.com/KirkDiggler/warband-api/internal/errors"
)

// yamlCatalog is the on-disk catalog document. House-ruled groups can swap
// individual costs without recompiling; the document must still price every
// attribute kind at every level.
type yamlCatalog struct {
	Weapons    []WeaponInfo                `yaml:"weapons"`
	Equipment  []EquipmentInfo             `yaml:"equipment"`
	Attributes map[string]map[string]int32 `yaml:"attributes"`
}

// LoadFile reads a YAML catalog from disk and validates it like the
// built-in tables.
func LoadFile(path string) (Client, error) {
	if path == "" {
		return nil, errors.InvalidArgument("catalog path cannot be empty")
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- operator-supplied path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument,
			"failed to parse catalog file %s", path)
	}

	attributes := make(map[weirdos.AttributeKind]map[weirdos.AttributeLevel]int32, len(doc.Attributes))
	for kind, levels := range doc.Attributes {
		table := make(map[weirdos.AttributeLevel]int32, len(levels))
		for level, cost := range levels {
			table[weirdos.AttributeLevel(level)] = cost
		}
		attributes[weirdos.AttributeKind(kind)] = table
	}

	return New(&Config{
		Weapons:    doc.Weapons,
		Equipment:  doc.Equipment,
		Attributes: attributes,
	})
}
