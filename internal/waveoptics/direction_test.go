package waveoptics

import (
	"errors"
	"testing"
)

func TestDirectionOpposites(t *testing.T) {
	pairs := map[Direction]Direction{
		East:  West,
		Up:    Down,
		South: North,
	}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Fatalf("%v.Opposite() = %v, want %v", d, d.Opposite(), want)
		}
		if want.Opposite() != d {
			t.Fatalf("%v.Opposite() = %v, want %v", want, want.Opposite(), d)
		}
	}
}

func TestDirectionVectors(t *testing.T) {
	for d := East; d <= North; d++ {
		v := d.Vec()
		o := d.Opposite().Vec()
		if v.X+o.X != 0 || v.Y+o.Y != 0 || v.Z+o.Z != 0 {
			t.Fatalf("%v and %v vectors are not opposite", d, d.Opposite())
		}
		n := v.X*v.X + v.Y*v.Y + v.Z*v.Z
		if n != 1 {
			t.Fatalf("%v vector is not a unit step: %+v", d, v)
		}
	}
}

func TestDirectionPerpendicularity(t *testing.T) {
	if East.IsPerpendicular(West) {
		t.Fatal("opposite directions share an axis")
	}
	if !East.IsPerpendicular(Up) || !East.IsPerpendicular(South) {
		t.Fatal("cross-axis directions must be perpendicular")
	}
	if got := East.FirstPerpendicular(); got != Up {
		t.Fatalf("East.FirstPerpendicular() = %v, want Up", got)
	}
	if got := Up.FirstPerpendicular(); got != East {
		t.Fatalf("Up.FirstPerpendicular() = %v, want East", got)
	}
	if got := South.FirstPerpendicular(); got != East {
		t.Fatalf("South.FirstPerpendicular() = %v, want East", got)
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"east", "west", "up", "down", "south", "north"} {
		d, err := ParseDirection(name)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", name, err)
		}
		if d.String() != name {
			t.Fatalf("round trip %q -> %v", name, d)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("bad name must wrap ErrInvalidDirection, got %v", err)
	}
}

func TestDirectionTextMarshalling(t *testing.T) {
	b, err := South.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var d Direction
	if err := d.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", b, err)
	}
	if d != South {
		t.Fatalf("text round trip: got %v", d)
	}
	if err := d.UnmarshalText([]byte("nowhere")); err == nil {
		t.Fatal("expected error for unknown direction name")
	}
}
