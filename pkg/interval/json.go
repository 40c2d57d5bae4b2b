package interval

import (
	"encoding/json"
)

type jsonEndpoint[P any] struct {
	Inclusive bool `json:"inclusive"`
	Value     P    `json:"value"`
}

type jsonInterval[P any] struct {
	Left  *jsonEndpoint[P] `json:"left"`
	Right *jsonEndpoint[P] `json:"right"`
	Empty bool             `json:"empty"`
}

func toJSONEndpoint[P any](e Endpoint[P]) *jsonEndpoint[P] {
	if e.IsUnbounded() {
		return nil
	}
	return &jsonEndpoint[P]{Inclusive: e.IsInclusive(), Value: e.point}
}

func fromJSONEndpoint[P any](e *jsonEndpoint[P]) Endpoint[P] {
	switch {
	case e == nil:
		return Unbounded[P]()
	case e.Inclusive:
		return At(Inclusive, e.Value)
	default:
		return At(Exclusive, e.Value)
	}
}

// MarshalJSON encodes iv as
// {"left":{"inclusive":bool,"value":P}|null,"right":{...}|null,"empty":bool}.
func (iv Interval[P, D]) MarshalJSON() ([]byte, error) {
	if !iv.span {
		return json.Marshal(jsonInterval[P]{Empty: true})
	}
	return json.Marshal(jsonInterval[P]{
		Left:  toJSONEndpoint(iv.left),
		Right: toJSONEndpoint(iv.right),
	})
}

// UnmarshalJSON decodes the MarshalJSON form and normalizes the result.
func (iv *Interval[P, D]) UnmarshalJSON(b []byte) error {
	var raw jsonInterval[P]
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Empty {
		*iv = Interval[P, D]{}
		return nil
	}
	v, err := NewFromEndpoints[P, D](fromJSONEndpoint(raw.Left), fromJSONEndpoint(raw.Right))
	if err != nil {
		return err
	}
	*iv = v
	return nil
}
