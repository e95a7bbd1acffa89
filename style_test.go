package minichart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFont(t *testing.T) {
	data := []struct {
		Input string
		Want  Font
	}{
		{
			Input: "12px Arial",
			Want:  Font{Size: 12, Family: "Arial"},
		},
		{
			Input: "bold 14pt \"Helvetica Neue\"",
			Want:  Font{Size: 14, Family: "Helvetica Neue", Bold: true},
		},
		{
			Input: "italic 9px serif",
			Want:  Font{Size: 9, Family: "serif", Italic: true},
		},
		{
			Input: "",
			Want:  Font{Size: DefaultFontSize, Family: DefaultFontFamily},
		},
		{
			Input: "huge Arial",
			Want:  Font{Size: DefaultFontSize, Family: DefaultFontFamily},
		},
	}
	for _, d := range data {
		assert.Equal(t, d.Want, ParseFont(d.Input), d.Input)
	}
}

func TestParseLabelPosition(t *testing.T) {
	for str, want := range map[string]LabelPosition{
		"":        LabelAbove,
		"above":   LabelAbove,
		"Below":   LabelBelow,
		" inside": LabelInside,
	} {
		got, err := ParseLabelPosition(str)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLabelPosition("left")
	assert.ErrorIs(t, err, ErrInvalidOption)
}
