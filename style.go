package minichart

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultLineColor  = "#3498db"
	DefaultFrameColor = "#000000"
	DefaultFontColor  = "#000000"
	DefaultGridColor  = "#dddddd"
	DefaultTrackColor = "#e0e0e0"

	DefaultTickFont   = "10px Arial"
	DefaultLabelFont  = "12px Arial"
	DefaultSliceFont  = "14px Arial"
	DefaultFrameWidth = 2
)

type LabelPosition string

const (
	LabelAbove  LabelPosition = "above"
	LabelBelow  LabelPosition = "below"
	LabelInside LabelPosition = "inside"
)

func ParseLabelPosition(str string) (LabelPosition, error) {
	pos := LabelPosition(strings.ToLower(strings.TrimSpace(str)))
	switch pos {
	case "":
		return LabelAbove, nil
	case LabelAbove, LabelBelow, LabelInside:
		return pos, nil
	default:
		return "", errors.Wrapf(ErrInvalidOption, "%s: unknown label position", str)
	}
}

// drawLabel places a label horizontally centered on x relative to top,
// the highest pixel of the shape it belongs to.
func drawLabel(s Surface, label string, x, top, bottom float64, pos LabelPosition) {
	switch pos {
	case LabelAbove:
		s.FillText(label, x, top-5)
	case LabelBelow:
		s.FillText(label, x, top+15)
	case LabelInside:
		s.Save()
		s.Translate(x, top-(top-(bottom-5))/2)
		s.Rotate(halfPi)
		s.FillText(label, 0, 0)
		s.Restore()
	}
}

// style holds the attributes shared by every chart; an empty string means
// the chart falls back to its own default.
type style struct {
	line      string
	font      string
	fontColor string
}

func (s style) lineOr(def string) string {
	return orDefault(s.line, def)
}

func (s style) fontOr(def string) string {
	return orDefault(s.font, def)
}

func (s style) fontColorOr(def string) string {
	return orDefault(s.fontColor, def)
}

func orDefault(str, def string) string {
	if str == "" {
		return def
	}
	return str
}

const (
	DefaultFontSize   = 10.0
	DefaultFontFamily = "sans-serif"
)

// Font is the parsed form of a css font shorthand as "12px Arial".
type Font struct {
	Size   float64
	Family string
	Bold   bool
	Italic bool
}

// ParseFont reads the size and the families of a css font shorthand.
// Missing or invalid parts fall back to 10px sans-serif.
func ParseFont(str string) Font {
	f := Font{
		Size:   DefaultFontSize,
		Family: DefaultFontFamily,
	}
	fields := strings.Fields(str)
	for i, tok := range fields {
		switch low := strings.ToLower(tok); {
		case low == "bold":
			f.Bold = true
		case low == "italic":
			f.Italic = true
		case strings.HasSuffix(low, "px") || strings.HasSuffix(low, "pt"):
			size, err := strconv.ParseFloat(low[:len(low)-2], 64)
			if err == nil && size > 0 {
				f.Size = size
			}
			if rest := strings.Join(fields[i+1:], " "); rest != "" {
				f.Family = strings.Trim(rest, `"'`)
			}
			return f
		}
	}
	return f
}
