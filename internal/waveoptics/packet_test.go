package waveoptics

import (
	"math"
	"testing"
)

func TestApplyMalusLawDiscrete(t *testing.T) {
	if got := ApplyMalusLaw(15, 0, 45); got != 7 {
		t.Fatalf("ApplyMalusLaw(15,0,45) = %d, want 7", got)
	}
	if got := ApplyMalusLaw(15, 0, 0); got != 15 {
		t.Fatalf("aligned axis: %d, want 15", got)
	}
	if got := ApplyMalusLaw(15, 0, 90); got != 0 {
		t.Fatalf("crossed axis: %d, want 0", got)
	}
	if got := ApplyMalusLaw(10, 45, 75); got != int(math.Floor(10*0.75)) {
		t.Fatalf("30° offset: %d", got)
	}
}

func TestToLightPacket(t *testing.T) {
	full := NewWaveLight(45, South, 0)
	p := ToLightPacket(full)
	if p.Intensity != 15 || p.Polarization != 45 || p.Direction != South || p.Phase != 1 {
		t.Fatalf("full beam packet: %+v", p)
	}

	half := full
	half.Jones = half.Jones.Scale(math.Sqrt(0.5))
	if p := ToLightPacket(half); p.Intensity != 7 {
		t.Fatalf("half intensity floors to 7, got %d", p.Intensity)
	}

	// π global phase flips the discretized sign
	flipped := full
	flipped.GlobalPhase = math.Pi
	if p := ToLightPacket(flipped); p.Phase != -1 {
		t.Fatalf("π phase should discretize to -1, got %+d", p.Phase)
	}
}

func TestCircularLightDiscretizesToLinear(t *testing.T) {
	// the legacy format cannot carry circular polarization: the packet snaps
	// to one of the four linear angles and the circularity is lost.
	circ := NewWaveLight(45, South, 0)
	circ.Jones = QuarterWavePlate(0).Apply(circ.Jones)
	p := ToLightPacket(circ)
	if p.Intensity != 15 {
		t.Fatalf("circular beam keeps full intensity, got %d", p.Intensity)
	}
	switch p.Polarization {
	case 0, 45, 90, 135:
	default:
		t.Fatalf("packet polarization must be one of the four angles, got %d", p.Polarization)
	}
	back := FromLightPacket(p, 0)
	if s := StokesFromJones(back.Jones); math.Abs(s.S3) > 1e-9 {
		t.Fatalf("legacy round trip must not preserve circularity, S3=%.3g", s.S3)
	}
}

func TestFromLightPacket(t *testing.T) {
	p := LightPacket{Direction: North, Intensity: 7, Polarization: 45, Phase: -1}
	l := FromLightPacket(p, 3)
	if l.Direction != North || l.SourceID != 3 {
		t.Fatalf("packet lift: %+v", l)
	}
	if math.Abs(l.Intensity()-7.0/15.0) > 1e-12 {
		t.Fatalf("amplitude lift: intensity %.6f, want %.6f", l.Intensity(), 7.0/15.0)
	}
	if math.Abs(l.GlobalPhase-math.Pi) > 1e-12 {
		t.Fatalf("negative phase lifts to π, got %.6f", l.GlobalPhase)
	}
	if l.Jones.DiscretePolarization() != 45 {
		t.Fatalf("polarization lift: %d", l.Jones.DiscretePolarization())
	}
}

func TestLegacyInterfere(t *testing.T) {
	add := legacyInterfere([]LightPacket{
		{Direction: South, Intensity: 6, Polarization: 0, Phase: 1},
		{Direction: South, Intensity: 5, Polarization: 0, Phase: 1},
	})
	if len(add) != 1 || add[0].Intensity != 11 || add[0].Phase != 1 {
		t.Fatalf("in-phase packets must add: %+v", add)
	}

	sub := legacyInterfere([]LightPacket{
		{Direction: South, Intensity: 6, Polarization: 0, Phase: 1},
		{Direction: South, Intensity: 9, Polarization: 0, Phase: -1},
	})
	if len(sub) != 1 || sub[0].Intensity != 3 || sub[0].Phase != -1 {
		t.Fatalf("opposite-phase packets must subtract: %+v", sub)
	}

	cancel := legacyInterfere([]LightPacket{
		{Direction: South, Intensity: 6, Polarization: 0, Phase: 1},
		{Direction: South, Intensity: 6, Polarization: 0, Phase: -1},
	})
	if len(cancel) != 0 {
		t.Fatalf("equal opposite packets must cancel: %+v", cancel)
	}

	capped := legacyInterfere([]LightPacket{
		{Direction: South, Intensity: 12, Polarization: 0, Phase: 1},
		{Direction: South, Intensity: 12, Polarization: 0, Phase: 1},
	})
	if len(capped) != 1 || capped[0].Intensity != MaxPacketIntensity {
		t.Fatalf("sum must cap at %d: %+v", MaxPacketIntensity, capped)
	}

	// different polarization bins never merge
	separate := legacyInterfere([]LightPacket{
		{Direction: South, Intensity: 6, Polarization: 0, Phase: 1},
		{Direction: South, Intensity: 6, Polarization: 45, Phase: -1},
	})
	if len(separate) != 2 {
		t.Fatalf("cross-polarization packets must stay separate: %+v", separate)
	}
}
