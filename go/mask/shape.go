package mask

import "strings"

// Shape selects the aperture geometry.
type Shape int

const (
	// Ellipse is an ellipse in 2-D and an ellipsoid in 3-D.
	Ellipse Shape = iota
	// Rectangle is a rectangle in 2-D and a cube in 3-D.
	Rectangle
	// Annulus is an annulus in 2-D and a spherical shell in 3-D.
	Annulus
)

// ParseShape maps a shape name to a Shape, ignoring case.
// Both the 2-D and 3-D names are accepted.
// Unrecognized names fall back to Ellipse.
func ParseShape(name string) Shape {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangle", "square", "cube":
		return Rectangle
	case "annulus", "shell":
		return Annulus
	default:
		return Ellipse
	}
}

// String gives the 2-D name of the shape.
func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "rectangle"
	case Annulus:
		return "annulus"
	default:
		return "ellipse"
	}
}

// Name3 gives the 3-D name of the shape.
func (s Shape) Name3() string {
	switch s {
	case Rectangle:
		return "cube"
	case Annulus:
		return "shell"
	default:
		return "ellipsoid"
	}
}

// MarshalText encodes the shape by its 2-D name.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts any name ParseShape does.
// Unknown names decode as Ellipse.
func (s *Shape) UnmarshalText(text []byte) error {
	*s = ParseShape(string(text))
	return nil
}
