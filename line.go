package minichart

import (
	"strconv"

	"github.com/midbel/slices"
)

const defaultLineMargin = 30

// LineChart draws a single polyline through a list of points inside a
// framed area with optional ticks on both axis.
type LineChart struct {
	base
}

func NewLineChart(s Surface, height, width float64, options ...Option) *LineChart {
	return &LineChart{
		base: makeBase("line", s, height, width, defaultLineMargin, options),
	}
}

func (c *LineChart) SetLineColor(color string) {
	c.line = color
}

func (c *LineChart) LineColor() string {
	return c.lineOr(DefaultLineColor)
}

func (c *LineChart) Draw(points []Point) error {
	if err := checkPoints(points); err != nil {
		return c.reject(err, len(points))
	}
	var (
		xs = make([]float64, len(points))
		ys = make([]float64, len(points))
	)
	for i := range points {
		xs[i], ys[i] = points[i].X, points[i].Y
	}
	var (
		xscale = NumberScaler(DomainOf(xs), NewRange(c.margin, c.width-c.margin))
		yscale = NumberScaler(DomainOf(ys), NewRange(c.height-c.margin, c.margin))
		axis   = c.height - c.margin
	)
	c.clear()
	c.drawFrame(axis)
	if c.showLabels {
		c.drawTicks(xscale, yscale, axis)
	}

	s := c.surface
	s.BeginPath()
	fst := slices.Fst(points)
	s.MoveTo(xscale.Scale(fst.X), yscale.Scale(fst.Y))
	for _, pt := range slices.Rest(points) {
		s.LineTo(xscale.Scale(pt.X), yscale.Scale(pt.Y))
	}
	s.SetStrokeStyle(c.LineColor())
	s.SetLineWidth(DefaultFrameWidth)
	s.Stroke()
	return nil
}

func (c *LineChart) drawFrame(axis float64) {
	s := c.surface
	s.SetStrokeStyle(DefaultFrameColor)
	s.SetLineWidth(DefaultFrameWidth)

	s.BeginPath()
	s.Rect(c.margin, c.margin, c.DrawingWidth(), c.DrawingHeight())
	s.Stroke()

	strokeLine(s, c.margin, axis, c.width-c.margin, axis)
}

func (c *LineChart) drawTicks(xscale, yscale Scaler, axis float64) {
	s := c.surface
	s.SetStrokeStyle(DefaultFrameColor)
	s.SetLineWidth(DefaultFrameWidth)
	s.SetFillStyle(DefaultFrameColor)
	s.SetFont(DefaultTickFont)
	s.SetTextAlign(AlignStart)

	for _, v := range xscale.Ticks() {
		x := xscale.Scale(v)
		strokeLine(s, x, axis, x, axis+5)
		s.FillText(formatTick(v), x-10, axis+15)
	}
	for _, v := range yscale.Ticks() {
		y := yscale.Scale(v)
		strokeLine(s, c.margin, y, c.margin-5, y)
		s.FillText(formatTick(v), c.margin-25, y+5)
	}
}

func formatTick(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
