package surface

import (
	"math"

	"github.com/midbel/minichart"
)

type Pos struct {
	X float64
	Y float64
}

// transform is a translation applied after a rotation, which is all the
// canvas operations used by the charts can produce.
type transform struct {
	tx    float64
	ty    float64
	angle float64
}

func (t transform) apply(x, y float64) Pos {
	sin, cos := math.Sincos(t.angle)
	return Pos{
		X: t.tx + x*cos - y*sin,
		Y: t.ty + x*sin + y*cos,
	}
}

func (t transform) translate(x, y float64) transform {
	p := t.apply(x, y)
	t.tx, t.ty = p.X, p.Y
	return t
}

func (t transform) rotate(angle float64) transform {
	t.angle += angle
	return t
}

func (t transform) identity() bool {
	return t.tx == 0 && t.ty == 0 && t.angle == 0
}

type state struct {
	stroke    string
	lineWidth float64
	fill      string
	font      minichart.Font
	align     string
	transform
}

func defaultState() state {
	return state{
		stroke:    "#000000",
		lineWidth: 1,
		fill:      "#000000",
		font:      minichart.ParseFont(""),
		align:     minichart.AlignStart,
	}
}

type cmdKind int

const (
	cmdMove cmdKind = iota
	cmdLine
	cmdArc
	cmdClose
)

// command is a path segment in device coordinates. Arcs keep their
// center, radius and angles, already rotated by the transform.
type command struct {
	kind   cmdKind
	pos    Pos
	radius float64
	start  float64
	end    float64
}

// context implements the state part of a canvas: style attributes, the
// save/restore stack and the current path.
type context struct {
	state
	stack []state
	path  []command
}

func newContext() context {
	return context{
		state: defaultState(),
	}
}

func (c *context) SetStrokeStyle(color string) {
	c.stroke = color
}

func (c *context) SetLineWidth(width float64) {
	if width > 0 {
		c.lineWidth = width
	}
}

func (c *context) SetFillStyle(color string) {
	c.fill = color
}

func (c *context) SetFont(font string) {
	c.font = minichart.ParseFont(font)
}

func (c *context) SetTextAlign(align string) {
	c.align = align
}

func (c *context) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *context) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *context) Translate(x, y float64) {
	c.transform = c.transform.translate(x, y)
}

func (c *context) Rotate(angle float64) {
	c.transform = c.transform.rotate(angle)
}

func (c *context) BeginPath() {
	c.path = c.path[:0]
}

func (c *context) MoveTo(x, y float64) {
	c.path = append(c.path, command{kind: cmdMove, pos: c.apply(x, y)})
}

func (c *context) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.path = append(c.path, command{kind: cmdLine, pos: c.apply(x, y)})
}

func (c *context) Arc(x, y, radius, start, end float64) {
	c.path = append(c.path, command{
		kind:   cmdArc,
		pos:    c.apply(x, y),
		radius: radius,
		start:  start + c.angle,
		end:    end + c.angle,
	})
}

func (c *context) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *context) ClosePath() {
	if len(c.path) > 0 {
		c.path = append(c.path, command{kind: cmdClose})
	}
}

func (c *context) reset() {
	c.state = defaultState()
	c.stack = c.stack[:0]
	c.path = c.path[:0]
}

// arcPoint gives the position on the circle of an arc at the given angle.
func arcPoint(cmd command, angle float64) Pos {
	sin, cos := math.Sincos(angle)
	return Pos{
		X: cmd.pos.X + cmd.radius*cos,
		Y: cmd.pos.Y + cmd.radius*sin,
	}
}

// alignOffset gives how far to the left a text of the given width has
// to start to honor the alignment.
func alignOffset(align string, width float64) float64 {
	switch align {
	case minichart.AlignCenter:
		return width / 2
	case minichart.AlignEnd, "right":
		return width
	default:
		return 0
	}
}

func anchorOf(align string) string {
	switch align {
	case minichart.AlignCenter:
		return "middle"
	case minichart.AlignEnd, "right":
		return "end"
	default:
		return "start"
	}
}

const rad2deg = 180 / math.Pi
