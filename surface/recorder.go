package surface

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/midbel/minichart"
)

// Op is a single call made on a Recorder.
type Op struct {
	Name string
	Args []float64
	Text string
}

func (o Op) String() string {
	var str strings.Builder
	str.WriteString(o.Name)
	str.WriteString("(")
	for i, a := range o.Args {
		if i > 0 {
			str.WriteString(", ")
		}
		fmt.Fprintf(&str, "%g", a)
	}
	if o.Text != "" {
		if len(o.Args) > 0 {
			str.WriteString(", ")
		}
		fmt.Fprintf(&str, "%q", o.Text)
	}
	str.WriteString(")")
	return str.String()
}

// Recorder is a surface keeping the list of every call made on it
// without drawing anything. Render dumps the calls, one per line.
type Recorder struct {
	width  float64
	height float64

	ops []Op
}

var _ minichart.Surface = (*Recorder)(nil)

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
	}
}

func (r *Recorder) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "surface(%g, %g)\n", r.width, r.height)
	for _, o := range r.ops {
		fmt.Fprintln(bw, o)
	}
	return bw.Flush()
}

func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

func (r *Recorder) Len() int {
	return len(r.ops)
}

func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Find returns every recorded call with the given name.
func (r *Recorder) Find(name string) []Op {
	var list []Op
	for _, o := range r.ops {
		if o.Name == name {
			list = append(list, o)
		}
	}
	return list
}

func (r *Recorder) Count(name string) int {
	return len(r.Find(name))
}

// Texts returns the text of every FillText call in order.
func (r *Recorder) Texts() []string {
	var list []string
	for _, o := range r.Find("fillText") {
		list = append(list, o.Text)
	}
	return list
}

func (r *Recorder) record(name string, text string, args ...float64) {
	r.ops = append(r.ops, Op{
		Name: name,
		Args: args,
		Text: text,
	})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record("clearRect", "", x, y, w, h)
}

func (r *Recorder) BeginPath() {
	r.record("beginPath", "")
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record("moveTo", "", x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.record("lineTo", "", x, y)
}

func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.record("arc", "", x, y, radius, start, end)
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.record("rect", "", x, y, w, h)
}

func (r *Recorder) ClosePath() {
	r.record("closePath", "")
}

func (r *Recorder) Stroke() {
	r.record("stroke", "")
}

func (r *Recorder) Fill() {
	r.record("fill", "")
}

func (r *Recorder) SetStrokeStyle(color string) {
	r.record("strokeStyle", color)
}

func (r *Recorder) SetLineWidth(width float64) {
	r.record("lineWidth", "", width)
}

func (r *Recorder) SetFillStyle(color string) {
	r.record("fillStyle", color)
}

func (r *Recorder) SetFont(font string) {
	r.record("font", font)
}

func (r *Recorder) SetTextAlign(align string) {
	r.record("textAlign", align)
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.record("fillText", text, x, y)
}

func (r *Recorder) Save() {
	r.record("save", "")
}

func (r *Recorder) Restore() {
	r.record("restore", "")
}

func (r *Recorder) Translate(x, y float64) {
	r.record("translate", "", x, y)
}

func (r *Recorder) Rotate(angle float64) {
	r.record("rotate", "", angle)
}
