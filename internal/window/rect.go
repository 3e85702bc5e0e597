package window

import "fmt"

// Rect is the position and size of a floating surface, in cells.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// IsZero reports whether the rect carries no geometry at all.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Valid reports whether the rect has a usable size.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Translate returns the rect shifted by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Grow returns the rect resized by dw, dh, never shrinking below 1x1.
func (r Rect) Grow(dw, dh int) Rect {
	r.W += dw
	r.H += dh
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@%d,%d", r.W, r.H, r.X, r.Y)
}
