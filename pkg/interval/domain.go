package interval

import "fmt"

// Domain is the contract a point type fulfils to be used as interval
// endpoints. Implementations are stateless: the algebra only ever calls the
// methods of the zero value.
type Domain[P any] interface {
	// Compare returns -1, 0 or +1 when a is less than, equal to or greater
	// than b.
	Compare(a, b P) int
	// Discrete reports whether every point has a computable successor.
	Discrete() bool
	// Step moves p by n positions. It is only called on discrete domains and
	// fails when the result falls outside of the domain.
	Step(p P, n int) (P, error)
	// Normalize validates a raw point and returns its canonical form.
	Normalize(p P) (P, error)
}

// Formatter is implemented by domains that can render points as text.
type Formatter[P any] interface {
	Format(p P) string
}

// Parser is implemented by domains that can read points from text.
type Parser[P any] interface {
	Parse(s string) (P, error)
}

// Sizer is implemented by domains that can measure the distance between two
// points.
type Sizer[P, S any] interface {
	Size(from, to P) S
}

func domainName[P any, D Domain[P]]() string {
	var d D
	return fmt.Sprintf("%T", d)
}
