package minichart

import (
	"math"
)

// DefaultTicks is the number of steps an axis is divided into.
const DefaultTicks = 5

type Domain interface {
	Diff(float64) float64
	Extend() float64
	Min() float64
	Max() float64
	Values(int) []float64
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

// DomainOf returns the domain spanning the smallest and the largest of
// values. values must not be empty.
func DomainOf(values []float64) Domain {
	var d numberDomain
	for i, v := range values {
		if i == 0 || v < d.fst {
			d.fst = v
		}
		if i == 0 || v > d.lst {
			d.lst = v
		}
	}
	return d
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Min() float64 {
	return n.fst
}

func (n numberDomain) Max() float64 {
	return n.lst
}

// Values divides the domain in c steps of ceil(extend/c) and returns the
// value at each step, bounds included. A domain too narrow to give a
// non zero step only yields its lower bound.
func (n numberDomain) Values(c int) []float64 {
	if c <= 0 {
		c = DefaultTicks
	}
	step := math.Ceil(n.Extend() / float64(c))
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return []float64{n.fst}
	}
	var all []float64
	for i := 0; ; i++ {
		v := n.fst + float64(i)*step
		if v > n.lst {
			break
		}
		all = append(all, v)
	}
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}


func (r Range) Middle() float64 {
	return r.F + r.Len()/2
}

// Scaler maps a value of its domain onto its range. A range whose F is
// greater than T gives an inverted axis.
type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s Scaler) Scale(v float64) float64 {
	if s.Extend() == 0 {
		return s.Middle()
	}
	return s.F + s.Diff(v)*s.Space()
}

// Space is the number of pixels per unit of the domain. It is zero when
// the domain has no extent.
func (s Scaler) Space() float64 {
	if s.Extend() == 0 {
		return 0
	}
	return s.Len() / s.Extend()
}

func (s Scaler) Ticks() []float64 {
	return s.Values(DefaultTicks)
}
