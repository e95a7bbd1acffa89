package minichart

// Surface is the 2D drawing capability the charts render onto. It
// follows the semantics of an HTML canvas 2D context: path coordinates
// are transformed by the current transform when they are added, Save and
// Restore push and pop the whole drawing state.
type Surface interface {
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, start, end float64)
	Rect(x, y, w, h float64)
	ClosePath()
	Stroke()
	Fill()

	SetStrokeStyle(color string)
	SetLineWidth(width float64)
	SetFillStyle(color string)
	SetFont(font string)
	SetTextAlign(align string)
	FillText(text string, x, y float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}

const (
	AlignStart  = "start"
	AlignCenter = "center"
	AlignEnd    = "end"
)
