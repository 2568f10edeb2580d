package waveoptics

import "fmt"

// Direction is one of the six axis-aligned travel directions:
// east/west on X, up/down on Y, south/north on Z.
type Direction uint8

const (
	East Direction = iota
	West
	Up
	Down
	South
	North
	numDirections
)

var directionNames = [numDirections]string{"east", "west", "up", "down", "south", "north"}

var directionVecs = [numDirections]Vec3i{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

func (d Direction) String() string {
	if d >= numDirections {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Vec returns the unit grid step of the direction.
func (d Direction) Vec() Vec3i { return directionVecs[d] }

func (d Direction) Valid() bool { return d < numDirections }

func (d Direction) Opposite() Direction {
	return d ^ 1 // pairs are laid out as (+axis, -axis)
}

// Axis returns 0, 1 or 2 for X, Y, Z.
func (d Direction) Axis() int { return int(d) / 2 }

// IsPerpendicular reports whether two directions lie on different axes.
func (d Direction) IsPerpendicular(o Direction) bool {
	return d.Axis() != o.Axis()
}

// FirstPerpendicular returns the first direction, in X→Y→Z order, on a
// different axis than d. Deterministic fallback for deflecting elements
// whose facing is not usable.
func (d Direction) FirstPerpendicular() Direction {
	if d.Axis() == 0 {
		return Up
	}
	return East
}

// ParseDirection maps a direction name to its tag.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%d: %w", uint8(d), ErrInvalidDirection)
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
