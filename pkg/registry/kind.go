package registry

import (
	"fmt"

	"github.com/henderiw/interval/pkg/interval"
)

// Predicate names a relation between two intervals.
type Predicate string

const (
	StrictlyLeftOf  Predicate = "left"
	StrictlyRightOf Predicate = "right"
	AdjacentLeftOf  Predicate = "adjacent-left"
	AdjacentRightOf Predicate = "adjacent-right"
	Adjacent        Predicate = "adjacent"
	Overlaps        Predicate = "overlaps"
	Contains        Predicate = "contains"
	Equal           Predicate = "equal"
)

// Predicates lists every supported predicate.
var Predicates = []Predicate{StrictlyLeftOf, StrictlyRightOf, AdjacentLeftOf, AdjacentRightOf, Adjacent, Overlaps, Contains, Equal}

// Operation names a set operation on two intervals.
type Operation string

const (
	Union        Operation = "union"
	Intersection Operation = "intersection"
	Difference   Operation = "difference"
	Partition    Operation = "partition"
)

// Operations lists every supported operation.
var Operations = []Operation{Union, Intersection, Difference, Partition}

// Kind runs interval operations on the text form of one point domain, so
// the domain can be picked at run time by name.
type Kind interface {
	Name() string
	Discrete() bool
	// Normalize parses text and returns its canonical form.
	Normalize(text string) (string, error)
	Relate(pred Predicate, a, b string) (bool, error)
	// Combine returns one interval, or three for Partition. Partition returns
	// no intervals when b is not contained in a.
	Combine(op Operation, a, b string) ([]string, error)
}

// KindOf returns the Kind of domain D. D must implement interval.Formatter
// and interval.Parser.
func KindOf[P any, D interval.Domain[P]](name string) Kind {
	return kind[P, D]{name: name}
}

type kind[P any, D interval.Domain[P]] struct {
	name string
}

func (k kind[P, D]) Name() string { return k.name }

func (k kind[P, D]) Discrete() bool {
	var d D
	return d.Discrete()
}

func (k kind[P, D]) Normalize(text string) (string, error) {
	iv, err := interval.Parse[P, D](text)
	if err != nil {
		return "", err
	}
	return interval.Format(iv)
}

func (k kind[P, D]) parse(a, b string) (x, y interval.Interval[P, D], err error) {
	if x, err = interval.Parse[P, D](a); err != nil {
		return x, y, err
	}
	y, err = interval.Parse[P, D](b)
	return x, y, err
}

func (k kind[P, D]) Relate(pred Predicate, a, b string) (bool, error) {
	x, y, err := k.parse(a, b)
	if err != nil {
		return false, err
	}
	switch pred {
	case StrictlyLeftOf:
		return x.StrictlyLeftOf(y), nil
	case StrictlyRightOf:
		return x.StrictlyRightOf(y), nil
	case AdjacentLeftOf:
		return x.AdjacentLeftOf(y), nil
	case AdjacentRightOf:
		return x.AdjacentRightOf(y), nil
	case Adjacent:
		return x.Adjacent(y), nil
	case Overlaps:
		return x.Overlaps(y), nil
	case Contains:
		return x.Contains(y), nil
	case Equal:
		return x.Equal(y), nil
	}
	return false, fmt.Errorf("unknown predicate %q", pred)
}

func (k kind[P, D]) Combine(op Operation, a, b string) ([]string, error) {
	x, y, err := k.parse(a, b)
	if err != nil {
		return nil, err
	}
	var out []interval.Interval[P, D]
	switch op {
	case Union:
		iv, err := x.Union(y)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	case Intersection:
		out = append(out, x.Intersection(y))
	case Difference:
		iv, err := x.Difference(y)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	case Partition:
		out = x.Partition(y)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	texts := make([]string, 0, len(out))
	for _, iv := range out {
		s, err := interval.Format(iv)
		if err != nil {
			return nil, err
		}
		texts = append(texts, s)
	}
	return texts, nil
}
