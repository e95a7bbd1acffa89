package minichart

import (
	"math"
)

const defaultPieMargin = 0

type PieChart struct {
	base
	radius float64
}

// NewPieChart creates a pie centered on the surface. A radius lower or
// equal to 0 gives the largest circle fitting inside the surface, less
// the margin if one was given with WithMargin.
func NewPieChart(s Surface, height, width, radius float64, options ...Option) *PieChart {
	return &PieChart{
		base:   makeBase("pie", s, height, width, defaultPieMargin, options),
		radius: radius,
	}
}

func (c *PieChart) Radius() float64 {
	if c.radius > 0 {
		return c.radius
	}
	return math.Max(math.Min(c.width, c.height)/2-c.margin, 0)
}

func (c *PieChart) Center() (float64, float64) {
	return c.width / 2, c.height / 2
}

func (c *PieChart) Draw(segments []Segment) error {
	total, err := checkSegments(segments)
	if err != nil {
		return c.reject(err, len(segments))
	}
	var (
		s      = c.surface
		cx, cy = c.Center()
		radius = c.Radius()
		angle  float64
	)
	c.clear()
	for i, seg := range segments {
		sweep := seg.Value / total * fullcircle
		end := angle + sweep
		if i == len(segments)-1 {
			end = fullcircle
		}
		s.BeginPath()
		s.MoveTo(cx, cy)
		s.Arc(cx, cy, radius, angle, end)
		s.ClosePath()
		s.SetFillStyle(c.fillColor(seg.Color, i))
		s.Fill()

		if seg.Label != "" {
			c.drawLabel(seg.Label, angle, end, radius)
		}
		angle = end
	}
	return nil
}

func (c *PieChart) drawLabel(label string, start, end, radius float64) {
	var (
		s      = c.surface
		cx, cy = c.Center()
		x, y   = getPosFromAngle(start+(end-start)/2, radius/1.5)
	)
	s.SetFillStyle(c.fontColorOr(DefaultFontColor))
	s.SetFont(c.fontOr(DefaultSliceFont))
	s.SetTextAlign(AlignStart)
	s.FillText(label, cx+x, cy+y)
}
