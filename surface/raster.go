package surface

import (
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/midbel/minichart"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RasterDPI makes one font point equal to one pixel.
const RasterDPI = 72

// Raster is a surface drawing into an image, encoded as PNG by Render.
type Raster struct {
	context
	renderer chart.Renderer
	face     *truetype.Font
}

var _ minichart.Surface = (*Raster)(nil)

func NewRaster(width, height int) (*Raster, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "create png renderer")
	}
	face, err := chart.GetDefaultFont()
	if err != nil {
		return nil, errors.Wrap(err, "load default font")
	}
	r.SetDPI(RasterDPI)
	s := Raster{
		context:  newContext(),
		renderer: r,
		face:     face,
	}
	s.ClearRect(0, 0, float64(width), float64(height))
	return &s, nil
}

func (s *Raster) ClearRect(x, y, w, h float64) {
	r := s.renderer
	r.SetFillColor(parseColor(Background))
	r.MoveTo(px(x), px(y))
	r.LineTo(px(x+w), px(y))
	r.LineTo(px(x+w), px(y+h))
	r.LineTo(px(x), px(y+h))
	r.Close()
	r.Fill()
}

func (s *Raster) Stroke() {
	if len(s.path) == 0 {
		return
	}
	s.renderer.SetStrokeColor(parseColor(s.stroke))
	s.renderer.SetStrokeWidth(s.lineWidth)
	s.replay()
	s.renderer.Stroke()
}

func (s *Raster) Fill() {
	if len(s.path) == 0 {
		return
	}
	s.renderer.SetFillColor(parseColor(s.fill))
	s.replay()
	s.renderer.Fill()
}

func (s *Raster) FillText(str string, x, y float64) {
	r := s.renderer
	r.SetFont(s.face)
	r.SetFontSize(s.font.Size)
	r.SetFontColor(parseColor(s.fill))

	box := r.MeasureText(str)
	pos := s.apply(x-alignOffset(s.align, float64(box.Width())), y)
	if s.angle != 0 {
		r.SetTextRotation(s.angle)
		defer r.ClearTextRotation()
	}
	r.Text(str, px(pos.X), px(pos.Y))
}

// Render writes the image to w as PNG.
func (s *Raster) Render(w io.Writer) error {
	return s.renderer.Save(w)
}

func (s *Raster) replay() {
	r := s.renderer
	for _, cmd := range s.path {
		switch cmd.kind {
		case cmdMove:
			r.MoveTo(px(cmd.pos.X), px(cmd.pos.Y))
		case cmdLine:
			r.LineTo(px(cmd.pos.X), px(cmd.pos.Y))
		case cmdArc:
			r.ArcTo(px(cmd.pos.X), px(cmd.pos.Y), cmd.radius, cmd.radius, cmd.start, cmd.end-cmd.start)
		case cmdClose:
			r.Close()
		}
	}
}

func px(f float64) int {
	return int(math.Round(f))
}

var namedColors = map[string]drawing.Color{
	"black":       drawing.ColorBlack,
	"white":       drawing.ColorWhite,
	"red":         {R: 255, A: 255},
	"green":       {G: 128, A: 255},
	"blue":        {B: 255, A: 255},
	"transparent": drawing.ColorTransparent,
	"none":        drawing.ColorTransparent,
}

// parseColor accepts #rgb, #rrggbb and a few color names. Anything else
// gives black.
func parseColor(str string) drawing.Color {
	str = strings.ToLower(strings.TrimSpace(str))
	if c, ok := namedColors[str]; ok {
		return c
	}
	hex := strings.TrimPrefix(str, "#")
	if n := len(hex); n != 3 && n != 6 {
		return drawing.ColorBlack
	}
	if strings.Trim(hex, "0123456789abcdef") != "" {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(hex)
}
