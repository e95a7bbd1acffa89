package minichart

import (
	"fmt"
	"math"
	"sync"
)

const (
	defaultScatterMargin = 30

	// ScatterDomain is the upper bound of both axis of a scatter chart.
	ScatterDomain = 1000.0
	// HoverDistance is the distance, in pixels, under which a pointer
	// shows the tooltip of a point.
	HoverDistance = 10.0

	gridCells     = 10
	tooltipOffset = 10
)

type ScatterChart struct {
	base

	mu          sync.Mutex
	points      []plotted
	overlay     Overlay
	unsubscribe func()
}

type plotted struct {
	Point
	px float64
	py float64
}

func NewScatterChart(s Surface, height, width float64, options ...Option) *ScatterChart {
	return &ScatterChart{
		base: makeBase("scatter", s, height, width, defaultScatterMargin, options),
	}
}

func (c *ScatterChart) SetPointColor(color string) {
	c.line = color
}

func (c *ScatterChart) PointColor() string {
	return c.lineOr(DefaultLineColor)
}

// Draw draws a circle for each point. Both coordinates of a point are
// expected to be in [0, ScatterDomain].
func (c *ScatterChart) Draw(items []Point, position LabelPosition, grid bool) error {
	position, err := ParseLabelPosition(string(position))
	if err != nil {
		return c.reject(err, len(items))
	}
	if err := checkPoints(items); err != nil {
		return c.reject(err, len(items))
	}
	var (
		s      = c.surface
		xscale = NumberScaler(NumberDomain(0, ScatterDomain), NewRange(c.margin, c.width-c.margin))
		yscale = NumberScaler(NumberDomain(0, ScatterDomain), NewRange(c.height-c.margin, c.margin))
		list   = make([]plotted, 0, len(items))
	)
	c.clear()
	if grid {
		c.drawGrid()
	}
	for _, it := range items {
		pt := plotted{
			Point: it,
			px:    xscale.Scale(it.X),
			py:    yscale.Scale(it.Y),
		}
		list = append(list, pt)

		drawCircle(s, pt.px, pt.py, PointRadius, c.pointFill(it.Color))
		if it.Label != "" {
			s.SetFillStyle(c.fontColorOr(DefaultFontColor))
			s.SetFont(c.fontOr(DefaultLabelFont))
			s.SetTextAlign(AlignCenter)
			drawLabel(s, it.Label, pt.px, pt.py-PointRadius, pt.py+PointRadius, position)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.points = list
	c.subscribe()
	return nil
}

// Dispose releases the pointer subscription and the tooltip. A later
// call to Draw subscribes again.
func (c *ScatterChart) Dispose() {
	c.mu.Lock()
	unsubscribe, overlay := c.unsubscribe, c.overlay
	c.unsubscribe, c.overlay, c.points = nil, nil, nil
	c.mu.Unlock()

	// the host may wait for running handlers, which lock c.mu
	if unsubscribe != nil {
		unsubscribe()
	}
	if overlay != nil {
		overlay.Remove()
	}
}

// Nearest returns the point drawn the closest to the given pixel
// position and its distance to it.
func (c *ScatterChart) Nearest(x, y float64) (Point, float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pt, dist, ok := c.nearest(x, y)
	return pt.Point, dist, ok
}

func (c *ScatterChart) nearest(x, y float64) (plotted, float64, bool) {
	var (
		best plotted
		dist = math.Inf(1)
	)
	for _, pt := range c.points {
		if d := math.Hypot(x-pt.px, y-pt.py); d < dist {
			best, dist = pt, d
		}
	}
	return best, dist, len(c.points) > 0
}

func (c *ScatterChart) subscribe() {
	if c.host == nil || c.unsubscribe != nil {
		return
	}
	if c.overlay == nil {
		c.overlay = c.host.NewOverlay()
	}
	c.unsubscribe = c.host.Subscribe(c.hover)
}

func (c *ScatterChart) hover(evt PointerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.overlay == nil {
		return
	}
	pt, dist, ok := c.nearest(evt.X, evt.Y)
	if !ok || dist >= HoverDistance {
		c.overlay.Hide()
		return
	}
	c.overlay.Show(tooltipText(pt.Point), evt.PageX+tooltipOffset, evt.PageY+tooltipOffset)
}

func (c *ScatterChart) drawGrid() {
	var (
		s  = c.surface
		dx = c.DrawingWidth() / gridCells
		dy = c.DrawingHeight() / gridCells
	)
	s.SetStrokeStyle(DefaultGridColor)
	s.SetLineWidth(1)
	for i := 0; i <= gridCells; i++ {
		x := c.margin + float64(i)*dx
		strokeLine(s, x, c.margin, x, c.height-c.margin)
		y := c.margin + float64(i)*dy
		strokeLine(s, c.margin, y, c.width-c.margin, y)
	}
}

func (c *ScatterChart) pointFill(color string) string {
	return orDefault(color, c.PointColor())
}

func tooltipText(pt Point) string {
	if pt.Label != "" {
		return pt.Label
	}
	return fmt.Sprintf("(%s, %s)", formatTick(pt.X), formatTick(pt.Y))
}
