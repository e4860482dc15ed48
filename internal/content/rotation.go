package content

// Rotation tracks which testimonial is on display. The index always
// stays within [0, Len) and wraps in both directions.
type Rotation struct {
	Index int `json:"index"`
	Len   int `json:"len"`
}

func NewRotation(n, index int) Rotation {
	r := Rotation{Len: n}
	r.Set(index)
	return r
}

func (r *Rotation) Next() {
	if r.Len == 0 {
		return
	}
	r.Index = (r.Index + 1) % r.Len
}

func (r *Rotation) Prev() {
	if r.Len == 0 {
		return
	}
	r.Index = (r.Index - 1 + r.Len) % r.Len
}

// Set jumps to i, normalised into range.
func (r *Rotation) Set(i int) {
	if r.Len == 0 {
		r.Index = 0
		return
	}
	r.Index = ((i % r.Len) + r.Len) % r.Len
}
