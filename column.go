package minichart

import (
	"math"
)

const defaultColumnMargin = 0

// BarGap is the space left between two adjacent columns.
const BarGap = 2

type ColumnChart struct {
	base
}

func NewColumnChart(s Surface, height, width float64, options ...Option) *ColumnChart {
	return &ColumnChart{
		base: makeBase("column", s, height, width, defaultColumnMargin, options),
	}
}

// Draw draws one column per item. The empty position draws the labels
// above the columns.
func (c *ColumnChart) Draw(items []BarItem, position LabelPosition) error {
	position, err := ParseLabelPosition(string(position))
	if err != nil {
		return c.reject(err, len(items))
	}
	peak, err := checkItems(items)
	if err != nil {
		return c.reject(err, len(items))
	}
	var (
		s      = c.surface
		width  = c.DrawingWidth() / float64(len(items))
		height = c.DrawingHeight()
		bottom = c.height - c.margin
	)
	c.clear()
	for i, it := range items {
		var (
			x = c.margin + float64(i)*width
			h float64
		)
		if peak > 0 {
			h = it.Value / peak * height
		}
		s.BeginPath()
		s.Rect(x, bottom-h, math.Max(width-BarGap, 0), h)
		s.SetFillStyle(c.fillColor(it.Color, i))
		s.Fill()

		if it.Label != "" {
			c.setLabelStyle()
			drawLabel(s, it.Label, x+width/2, bottom-h, bottom, position)
		}
	}
	return nil
}

func (c *ColumnChart) setLabelStyle() {
	s := c.surface
	s.SetFillStyle(c.fontColorOr(DefaultFontColor))
	s.SetFont(c.fontOr(DefaultLabelFont))
	s.SetTextAlign(AlignCenter)
}
