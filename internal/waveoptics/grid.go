package waveoptics

import (
	"fmt"
	"strconv"
	"strings"
)

// Vec3i is an integer grid position.
type Vec3i struct {
	X, Y, Z int
}

func (v Vec3i) Add(o Vec3i) Vec3i {
	return Vec3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Key encodes the position as the canonical "x,y,z" map key.
func (v Vec3i) Key() string {
	return strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + "," + strconv.Itoa(v.Z)
}

// ParsePositionKey decodes a canonical "x,y,z" key.
func ParsePositionKey(key string) (Vec3i, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return Vec3i{}, fmt.Errorf("%q: %w", key, ErrInvalidPositionKey)
	}
	var out [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Vec3i{}, fmt.Errorf("%q: %w", key, ErrInvalidPositionKey)
		}
		out[i] = n
	}
	return Vec3i{out[0], out[1], out[2]}, nil
}

// inBounds checks the symmetric world cube [-worldSize, worldSize] on every axis.
func inBounds(p Vec3i, worldSize int) bool {
	return p.X >= -worldSize && p.X <= worldSize &&
		p.Y >= -worldSize && p.Y <= worldSize &&
		p.Z >= -worldSize && p.Z <= worldSize
}
