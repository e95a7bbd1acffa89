package minichart

import (
	"math"
)

// Point is a value of the line and scatter charts.
type Point struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

func NumberPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Segment is a slice of a pie chart.
type Segment struct {
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// BarItem is a column of a column chart.
type BarItem struct {
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

func checkPoints(points []Point) error {
	if len(points) == 0 {
		return invalidData("no points")
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return invalidData("point #%d: non finite coordinates", i)
		}
	}
	return nil
}

func checkSegments(segments []Segment) (float64, error) {
	if len(segments) == 0 {
		return 0, invalidData("no segments")
	}
	var total float64
	for i, s := range segments {
		if !isFinite(s.Value) || s.Value < 0 {
			return 0, invalidData("segment #%d: value must be a non negative number", i)
		}
		total += s.Value
	}
	if total <= 0 || math.IsInf(total, 0) {
		return 0, invalidData("sum of segments must be greater than 0")
	}
	return total, nil
}

func checkItems(items []BarItem) (float64, error) {
	if len(items) == 0 {
		return 0, invalidData("no items")
	}
	var peak float64
	for i, it := range items {
		if !isFinite(it.Value) || it.Value < 0 {
			return 0, invalidData("item #%d: value must be a non negative number", i)
		}
		if it.Value > peak {
			peak = it.Value
		}
	}
	return peak, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
