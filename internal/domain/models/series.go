package models

// Point is one observation in a time-aligned series. Label is an opaque
// ordered timestamp label borrowed from the inbound market data.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is an ordered, append-only sequence of observations.
type Series []Point

// Clone returns an independent copy safe to read without the store lock.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}
