package uncertain

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"time"
)

// Sampler draws one value between min and max.
// Each call is independent of the ones before it.
type Sampler interface {
	Sample(min, max float64) float64
}

// Uniform draws from a continuous uniform distribution over [min, max).
// It is not safe for concurrent use.
type Uniform struct {
	src rand.Source
}

// NewUniform returns a Uniform seeded with seed.
// Seed 0 seeds from the clock.
func NewUniform(seed uint64) *Uniform {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Uniform{src: rand.NewSource(seed)}
}

func (u *Uniform) Sample(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	d := distuv.Uniform{Min: min, Max: max, Src: u.src}
	return d.Rand()
}

// Fixed replays Values in order, wrapping around, clamped into [min, max].
// With no Values it returns the midpoint.
type Fixed struct {
	Values []float64
	i      int
}

func (f *Fixed) Sample(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if len(f.Values) == 0 {
		return min + (max-min)/2
	}
	v := f.Values[f.i%len(f.Values)]
	f.i++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Range is a closed pair of sampling bounds.
type Range struct {
	Min, Max float64
}

func (r Range) Sample(s Sampler) float64 {
	return s.Sample(r.Min, r.Max)
}

func (r Range) Contains(v float64) bool {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Ranges bounds the pressure (kPa-scaled) and temperature (C) uncertainty draws.
type Ranges struct {
	Pressure    Range
	Temperature Range
}
