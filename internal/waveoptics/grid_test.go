package waveoptics

import (
	"errors"
	"testing"
)

func TestPositionKeyRoundTrip(t *testing.T) {
	positions := []Vec3i{
		{0, 0, 0},
		{1, -2, 3},
		{-10, 10, -10},
	}
	for _, p := range positions {
		got, err := ParsePositionKey(p.Key())
		if err != nil {
			t.Fatalf("ParsePositionKey(%q): %v", p.Key(), err)
		}
		if got != p {
			t.Fatalf("round trip %q: got %+v", p.Key(), got)
		}
	}
	if got, err := ParsePositionKey(" 1, 2, 3 "); err != nil || (got != Vec3i{1, 2, 3}) {
		t.Fatalf("spaced key: %+v, %v", got, err)
	}
}

func TestParsePositionKeyErrors(t *testing.T) {
	for _, key := range []string{"", "1,2", "1,2,3,4", "a,b,c", "1,,3"} {
		if _, err := ParsePositionKey(key); !errors.Is(err, ErrInvalidPositionKey) {
			t.Fatalf("ParsePositionKey(%q) must wrap ErrInvalidPositionKey, got %v", key, err)
		}
	}
}

func TestInBounds(t *testing.T) {
	if !inBounds(Vec3i{5, -5, 0}, 5) {
		t.Fatal("cube faces are inside the world")
	}
	if inBounds(Vec3i{6, 0, 0}, 5) || inBounds(Vec3i{0, -6, 0}, 5) || inBounds(Vec3i{0, 0, 6}, 5) {
		t.Fatal("positions past the cube on any axis are outside")
	}
}

func TestVecAdd(t *testing.T) {
	p := Vec3i{1, 2, 3}.Add(South.Vec())
	if (p != Vec3i{1, 2, 4}) {
		t.Fatalf("step south: %+v", p)
	}
}
