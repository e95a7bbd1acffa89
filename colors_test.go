package minichart

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestRandomColors(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		src := NewRandomColors(1)
		for i := 0; i < 20; i++ {
			assert.Regexp(t, hexColor, src.Color(i))
		}
	})
	t.Run("cached", func(t *testing.T) {
		src := NewRandomColors(7)
		fst := src.Color(3)
		src.Color(0)
		src.Color(12)
		assert.Equal(t, fst, src.Color(3))
	})
	t.Run("seeded", func(t *testing.T) {
		a, b := NewRandomColors(42), NewRandomColors(42)
		for i := 0; i < 10; i++ {
			require.Equal(t, a.Color(i), b.Color(i))
		}
	})
}

func TestPalette(t *testing.T) {
	require.Len(t, Category10, 10)
	require.Len(t, Tableau10, 10)

	assert.Equal(t, "#1f77b4", Category10.Color(0))
	assert.Equal(t, Category10.Color(0), Category10.Color(10))
	assert.Equal(t, Tableau10.Color(3), Tableau10.Color(13))
	assert.Equal(t, DefaultLineColor, Palette(nil).Color(2))
}
