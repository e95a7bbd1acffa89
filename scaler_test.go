package minichart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainValues(t *testing.T) {
	data := []struct {
		Name string
		Dom  Domain
		Want []float64
	}{
		{
			Name: "exact",
			Dom:  NumberDomain(0, 10),
			Want: []float64{0, 2, 4, 6, 8, 10},
		},
		{
			Name: "rounded-step",
			Dom:  NumberDomain(0, 7),
			Want: []float64{0, 2, 4, 6},
		},
		{
			Name: "small",
			Dom:  NumberDomain(0, 1),
			Want: []float64{0, 1},
		},
		{
			Name: "negative",
			Dom:  NumberDomain(-10, 10),
			Want: []float64{-10, -6, -2, 2, 6, 10},
		},
		{
			Name: "zero-extent",
			Dom:  NumberDomain(5, 5),
			Want: []float64{5},
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			assert.Equal(t, d.Want, d.Dom.Values(DefaultTicks))
		})
	}
}

func TestDomainOf(t *testing.T) {
	dom := DomainOf([]float64{4, -2, 9, 3})
	assert.Equal(t, -2.0, dom.Min())
	assert.Equal(t, 9.0, dom.Max())
	assert.Equal(t, 11.0, dom.Extend())
}

func TestScalerScale(t *testing.T) {
	t.Run("inverted", func(t *testing.T) {
		s := NumberScaler(NumberDomain(0, 10), NewRange(90, 10))
		assert.Equal(t, 90.0, s.Scale(0))
		assert.Equal(t, 10.0, s.Scale(10))
		assert.Equal(t, 50.0, s.Scale(5))
	})
	t.Run("straight", func(t *testing.T) {
		s := NumberScaler(NumberDomain(0, 20), NewRange(30, 370))
		assert.Equal(t, 30.0, s.Scale(0))
		assert.Equal(t, 370.0, s.Scale(20))
		assert.Equal(t, 200.0, s.Scale(10))
	})
	t.Run("zero-extent", func(t *testing.T) {
		s := NumberScaler(NumberDomain(3, 3), NewRange(10, 90))
		assert.Equal(t, 0.0, s.Space())
		got := s.Scale(3)
		assert.False(t, math.IsNaN(got))
		assert.Equal(t, 50.0, got)
		assert.Equal(t, []float64{3}, s.Ticks())
	})
	t.Run("bounds", func(t *testing.T) {
		s := NumberScaler(NumberDomain(1, 4), NewRange(100, 0))
		assert.Equal(t, 1.0, s.Min())
		assert.Equal(t, 4.0, s.Max())
	})
}
