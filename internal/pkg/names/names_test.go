package names_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/warband-api/internal/pkg/names"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "The Breakers", "The Breakers"},
		{"trims", "  The Breakers  ", "The Breakers"},
		{"collapses whitespace", "The\t\tBreakers   Crew", "The Breakers Crew"},
		{"control characters separate words", "The\x00Break\ners", "The Break ers"},
		{"empty", "   ", ""},
		{"truncates", strings.Repeat("a", 80), strings.Repeat("a", 50)},
		{"truncates on a rune boundary", strings.Repeat("a", 49) + "éé", strings.Repeat("a", 49)},
		{"keeps a rune that fits exactly", strings.Repeat("a", 48) + "é", strings.Repeat("a", 48) + "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names.Sanitize(tt.input))
		})
	}
}

func TestSanitizeBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		got := names.Sanitize(input)

		if len(got) > names.MaxLength {
			rt.Fatalf("sanitized name %q exceeds max length", got)
		}
		if !utf8.ValidString(got) {
			rt.Fatalf("sanitized name %q is not valid UTF-8", got)
		}
		if got != strings.TrimSpace(got) {
			rt.Fatalf("sanitized name %q has outer whitespace", got)
		}
	})
}

func TestEnsureUnique(t *testing.T) {
	t.Run("free name passes through", func(t *testing.T) {
		got := names.EnsureUnique("The Breakers", []string{"Iron Fists"})
		assert.Equal(t, "The Breakers", got)
	})

	t.Run("case-insensitive clash", func(t *testing.T) {
		got := names.EnsureUnique("The Breakers", []string{"the breakers"})
		assert.Equal(t, "The Breakers (2)", got)
	})

	t.Run("counts past taken suffixes", func(t *testing.T) {
		existing := []string{"The Breakers", "The Breakers (2)", "the breakers (3)"}
		got := names.EnsureUnique("The Breakers", existing)
		assert.Equal(t, "The Breakers (4)", got)
	})

	t.Run("no existing names", func(t *testing.T) {
		got := names.EnsureUnique("The Breakers", nil)
		assert.Equal(t, "The Breakers", got)
	})

	t.Run("suffix stays within the length cap", func(t *testing.T) {
		name := strings.Repeat("a", names.MaxLength)
		got := names.EnsureUnique(name, []string{name})
		assert.Equal(t, strings.Repeat("a", 46)+" (2)", got)
		assert.LessOrEqual(t, len(got), names.MaxLength)
	})

	t.Run("shortened base cannot split a rune", func(t *testing.T) {
		name := strings.Repeat("é", names.MaxLength/2)
		got := names.EnsureUnique(name, []string{name})
		assert.True(t, utf8.ValidString(got))
		assert.LessOrEqual(t, len(got), names.MaxLength)
		assert.True(t, strings.HasSuffix(got, " (2)"))
	})
}
