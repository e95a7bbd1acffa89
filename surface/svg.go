package surface

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/minichart"
	"github.com/midbel/svg"
)

// Background is the color painted by a partial ClearRect.
var Background = "#ffffff"

// SVG is a surface building a svg document. Every Stroke, Fill and
// FillText adds an element to the document; clearing the whole surface
// drops all of them.
type SVG struct {
	context
	width    float64
	height   float64
	elements []svg.Element
}

var _ minichart.Surface = (*SVG)(nil)

func NewSVG(width, height float64) *SVG {
	return &SVG{
		context: newContext(),
		width:   width,
		height:  height,
	}
}

// Len gives the number of elements in the document.
func (s *SVG) Len() int {
	return len(s.elements)
}

func (s *SVG) ClearRect(x, y, w, h float64) {
	if s.identity() && x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.elements = s.elements[:0]
		return
	}
	var (
		pos = s.apply(x, y)
		rec svg.Rect
	)
	rec.Pos = svg.NewPos(pos.X, pos.Y)
	rec.Dim = svg.NewDim(w, h)
	rec.Fill = svg.NewFill(Background)
	s.elements = append(s.elements, rec.AsElement())
}

func (s *SVG) Stroke() {
	if len(s.path) == 0 {
		return
	}
	pat := s.buildPath()
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(s.stroke, s.lineWidth)
	s.elements = append(s.elements, pat.AsElement())
}

func (s *SVG) Fill() {
	if len(s.path) == 0 {
		return
	}
	pat := s.buildPath()
	pat.Fill = svg.NewFill(s.fill)
	s.elements = append(s.elements, pat.AsElement())
}

func (s *SVG) FillText(str string, x, y float64) {
	var (
		txt = svg.NewText(str)
		grp svg.Group
	)
	txt.Font = svg.NewFont(s.font.Size)
	txt.Anchor = anchorOf(s.align)
	grp.Fill = svg.NewFill(s.fill)
	if s.angle == 0 {
		pos := s.apply(x, y)
		txt.Pos = svg.NewPos(pos.X, pos.Y)
	} else {
		txt.Pos = svg.NewPos(x, y)
		grp.Transform = svg.Translate(s.tx, s.ty)
		grp.Transform.RA = s.angle * rad2deg
	}
	grp.Append(txt.AsElement())
	s.elements = append(s.elements, grp.AsElement())
}

// Render writes the document to w.
func (s *SVG) Render(w io.Writer) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(s.width, s.height)
	el.OmitProlog = true
	for _, e := range s.elements {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (s *SVG) buildPath() svg.Path {
	var (
		pat svg.Path
		cur bool
	)
	pat.Rendering = "geometricPrecision"
	for _, cmd := range s.path {
		switch cmd.kind {
		case cmdMove:
			pat.AbsMoveTo(toPos(cmd.pos))
			cur = true
		case cmdLine:
			pat.AbsLineTo(toPos(cmd.pos))
		case cmdArc:
			from := toPos(arcPoint(cmd, cmd.start))
			if cur {
				pat.AbsLineTo(from)
			} else {
				pat.AbsMoveTo(from)
			}
			appendArc(&pat, cmd)
			cur = true
		case cmdClose:
			pat.ClosePath()
		}
	}
	return pat
}

// appendArc splits arcs wider than a half circle since a svg arc can not
// go back to its own starting point.
func appendArc(pat *svg.Path, cmd command) {
	var (
		delta = cmd.end - cmd.start
		sweep = delta > 0
	)
	if math.Abs(delta) > 2*math.Pi {
		delta = math.Copysign(2*math.Pi, delta)
	}
	if math.Abs(delta) > math.Pi {
		mid := cmd.start + delta/2
		pat.AbsArcTo(toPos(arcPoint(cmd, mid)), cmd.radius, cmd.radius, 0, false, sweep)
	}
	end := toPos(arcPoint(cmd, cmd.start+delta))
	pat.AbsArcTo(end, cmd.radius, cmd.radius, 0, false, sweep)
}

func toPos(p Pos) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}
