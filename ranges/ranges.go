package ranges

import (
	"iter"
	"math"

	"github.com/kbukum/seqfns/errors"
)

// Spec is a bounded range description: Count, Bounds or Counted.
type Spec interface {
	plan() (Plan, error)
}

// Count yields 0 through n-1.
type Count int

// Bounds yields From, From+Increment, ... up to and including To when the
// increment lands on it. A nil Increment steps by 1 towards To.
type Bounds struct {
	From      float64  `yaml:"from" mapstructure:"from"`
	To        float64  `yaml:"to" mapstructure:"to"`
	Increment *float64 `yaml:"increment" mapstructure:"increment"`
}

// Counted yields Count values beginning at Start. A nil Increment steps by 1;
// a zero Increment repeats Start.
type Counted struct {
	Start     float64  `yaml:"start" mapstructure:"start"`
	Count     int      `yaml:"count" mapstructure:"count"`
	Increment *float64 `yaml:"increment" mapstructure:"increment"`
}

// Infinite yields Start, Start+Increment, ... without end. A nil Increment
// steps by 1.
type Infinite struct {
	Start     float64  `yaml:"start" mapstructure:"start"`
	Increment *float64 `yaml:"increment" mapstructure:"increment"`
}

// Plan is a normalized bounded range.
type Plan struct {
	Start     float64
	Count     int
	Increment float64
}

// Step returns a pointer to v, for the optional Increment fields.
func Step(v float64) *float64 {
	return &v
}

// Normalize validates spec and reduces it to a Plan.
func Normalize(spec Spec) (Plan, error) {
	return spec.plan()
}

func (c Count) plan() (Plan, error) {
	return Plan{Start: 0, Count: int(c), Increment: 1}, nil
}

func (b Bounds) plan() (Plan, error) {
	sign := 1.0
	if b.To < b.From {
		sign = -1
	}
	increment := sign
	if b.Increment != nil {
		if *b.Increment == 0 || *b.Increment/sign < 0 {
			return Plan{}, errors.InfiniteSequence(b.From, b.To, *b.Increment)
		}
		increment = *b.Increment
	}
	return Plan{
		Start:     b.From,
		Count:     int(math.Floor((b.To-b.From)/increment + 1)),
		Increment: increment,
	}, nil
}

func (c Counted) plan() (Plan, error) {
	increment := 1.0
	if c.Increment != nil {
		increment = *c.Increment
	}
	return Plan{Start: c.Start, Count: c.Count, Increment: increment}, nil
}

// Values yields the planned numbers.
func (p Plan) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		current := p.Start
		for i := 0; i < p.Count; i++ {
			if !yield(current) {
				return
			}
			current += p.Increment
		}
	}
}

// Step returns the increment, defaulting to 1.
func (i Infinite) Step() float64 {
	if i.Increment == nil {
		return 1
	}
	return *i.Increment
}

// Values yields the unbounded sequence.
func (i Infinite) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		step := i.Step()
		for current := i.Start; ; current += step {
			if !yield(current) {
				return
			}
		}
	}
}
