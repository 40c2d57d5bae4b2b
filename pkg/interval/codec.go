package interval

import (
	"fmt"
	"strings"
)

const emptyText = "empty"

// Format renders iv in its canonical text form, e.g. "[1,3)", "(1.5,2]",
// ",5)" for a left-unbounded and "[1," for a right-unbounded interval, or
// "empty". It needs the domain to implement Formatter.
func Format[P any, D Domain[P]](iv Interval[P, D]) (string, error) {
	if !iv.span {
		return emptyText, nil
	}
	var format func(P) string
	if !iv.left.IsUnbounded() || !iv.right.IsUnbounded() {
		var d D
		f, ok := any(d).(Formatter[P])
		if !ok {
			return "", &NotImplementedError{Domain: domainName[P, D](), Hook: "point_format"}
		}
		format = f.Format
	}
	return iv.text(format), nil
}

func (iv Interval[P, D]) text(format func(P) string) string {
	if !iv.span {
		return emptyText
	}
	var sb strings.Builder
	switch {
	case iv.left.IsInclusive():
		sb.WriteByte('[')
		sb.WriteString(format(iv.left.point))
	case iv.left.IsExclusive():
		sb.WriteByte('(')
		sb.WriteString(format(iv.left.point))
	}
	sb.WriteByte(',')
	switch {
	case iv.right.IsInclusive():
		sb.WriteString(format(iv.right.point))
		sb.WriteByte(']')
	case iv.right.IsExclusive():
		sb.WriteString(format(iv.right.point))
		sb.WriteByte(')')
	}
	return sb.String()
}

// String formats iv, falling back to the default formatting of the point
// type when the domain does not implement Formatter.
func (iv Interval[P, D]) String() string {
	var d D
	if f, ok := any(d).(Formatter[P]); ok {
		return iv.text(f.Format)
	}
	return iv.text(func(p P) string { return fmt.Sprint(p) })
}

// Parse reads an interval in the form produced by Format and normalizes it,
// so "[1,3]" over integers yields [1,4). A side without a point is
// unbounded; its bracket may be left out. Parse needs the domain to
// implement Parser.
func Parse[P any, D Domain[P]](s string) (Interval[P, D], error) {
	s = strings.TrimSpace(s)
	if s == emptyText {
		return Interval[P, D]{}, nil
	}
	comma := strings.IndexByte(s, ',')
	if comma == -1 {
		return Interval[P, D]{}, &ParseError{Kind: MissingComma, Text: s}
	}

	left, err := parseEndpoint[P, D](Left, s[:comma])
	if err != nil {
		return Interval[P, D]{}, err
	}
	right, err := parseEndpoint[P, D](Right, s[comma+1:])
	if err != nil {
		return Interval[P, D]{}, err
	}
	return NewFromEndpoints[P, D](left, right)
}

func parseEndpoint[P any, D Domain[P]](side Side, s string) (Endpoint[P], error) {
	s = strings.TrimSpace(s)
	var b Bound
	switch {
	case side == Left && strings.HasPrefix(s, "["):
		b, s = Inclusive, s[1:]
	case side == Left && strings.HasPrefix(s, "("):
		b, s = Exclusive, s[1:]
	case side == Right && strings.HasSuffix(s, "]"):
		b, s = Inclusive, s[:len(s)-1]
	case side == Right && strings.HasSuffix(s, ")"):
		b, s = Exclusive, s[:len(s)-1]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Unbounded[P](), nil
	}
	if b == 0 {
		return Endpoint[P]{}, &ParseError{Side: side, Kind: MissingBound, Text: s}
	}

	var d D
	parser, ok := any(d).(Parser[P])
	if !ok {
		return Endpoint[P]{}, &NotImplementedError{Domain: domainName[P, D](), Hook: "point_parse"}
	}
	p, err := parser.Parse(s)
	if err == nil {
		p, err = d.Normalize(p)
	}
	if err != nil {
		return Endpoint[P]{}, &ParseError{Side: side, Kind: InvalidPoint, Text: s, Cause: err}
	}
	return At(b, p), nil
}

// MarshalText implements encoding.TextMarshaler.
func (iv Interval[P, D]) MarshalText() ([]byte, error) {
	s, err := Format(iv)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (iv *Interval[P, D]) UnmarshalText(text []byte) error {
	v, err := Parse[P, D](string(text))
	if err != nil {
		return err
	}
	*iv = v
	return nil
}
