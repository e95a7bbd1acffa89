package minichart

import (
	"math"
)

// PointRadius is the radius of the circles drawn by the scatter chart.
var PointRadius float64 = 5

const (
	fullcircle = 2 * math.Pi
	halfPi     = math.Pi / 2
)

func drawCircle(s Surface, x, y, radius float64, color string) {
	s.BeginPath()
	s.Arc(x, y, radius, 0, fullcircle)
	s.SetFillStyle(color)
	s.Fill()
}

func strokeLine(s Surface, x1, y1, x2, y2 float64) {
	s.BeginPath()
	s.MoveTo(x1, y1)
	s.LineTo(x2, y2)
	s.Stroke()
}

func getPosFromAngle(angle, radius float64) (float64, float64) {
	var (
		x1 = radius * math.Cos(angle)
		y1 = radius * math.Sin(angle)
	)
	return x1, y1
}
