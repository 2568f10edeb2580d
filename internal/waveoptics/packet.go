package waveoptics

import "math"

// LightPacket is the legacy discretized wire unit the rendering layer
// consumes: intensity 0..15, polarization snapped to one of four angles,
// phase reduced to ±1. Conversion here is deliberately lossy; nothing else
// in the package discretizes.
type LightPacket struct {
	Direction    Direction `json:"direction"`
	Intensity    int       `json:"intensity"`
	Polarization int       `json:"polarization"`
	Phase        int       `json:"phase"`
}

// ToLightPacket discretizes a wave state: intensity by amplitude-squared
// scaling and flooring, polarization to the nearest of {0,45,90,135}, phase
// by the sign of the dominant component.
func ToLightPacket(l WaveLight) LightPacket {
	intensity := int(math.Floor(l.Jones.Intensity() * MaxPacketIntensity))
	if intensity > MaxPacketIntensity {
		intensity = MaxPacketIntensity
	}
	if intensity < 0 {
		intensity = 0
	}
	return LightPacket{
		Direction:    l.Direction,
		Intensity:    intensity,
		Polarization: l.Jones.DiscretePolarization(),
		Phase:        l.phased().DiscretePhase(),
	}
}

// FromLightPacket lifts a legacy packet back into a wave state: amplitude
// sqrt(intensity/15), phase 0 or π.
func FromLightPacket(p LightPacket, sourceID int) WaveLight {
	amp := math.Sqrt(Real(p.Intensity) / MaxPacketIntensity)
	l := WaveLight{
		Jones:     NewLinearJones(degToRad(Real(p.Polarization)), amp),
		Direction: p.Direction,
		SourceID:  sourceID,
	}
	if p.Phase < 0 {
		l.GlobalPhase = math.Pi
	}
	return l
}

// ApplyMalusLaw is the legacy discrete form of Malus's law kept for the
// rendering layer: floor(I·cos²Δ).
func ApplyMalusLaw(intensity int, inAngleDeg, axisDeg int) int {
	delta := degToRad(Real(axisDeg - inAngleDeg))
	c := math.Cos(delta)
	return int(math.Floor(Real(intensity) * c * c))
}

// legacyInterfere reproduces the simplified binary interference pass of the
// scalar engine: packets sharing direction and discretized polarization add
// intensities when phases agree and subtract when they oppose, capped at the
// maximum discretized intensity. Output order follows first appearance.
func legacyInterfere(packets []LightPacket) []LightPacket {
	type binKey struct {
		dir          Direction
		polarization int
	}
	type bin struct {
		signed int // phase-weighted intensity sum
		first  int // index of first packet in the bin
	}

	bins := make(map[binKey]*bin)
	order := make([]binKey, 0, len(packets))
	for i, p := range packets {
		k := binKey{p.Direction, p.Polarization}
		b, ok := bins[k]
		if !ok {
			b = &bin{first: i}
			bins[k] = b
			order = append(order, k)
		}
		b.signed += p.Phase * p.Intensity
	}

	out := make([]LightPacket, 0, len(order))
	for _, k := range order {
		b := bins[k]
		intensity := b.signed
		phase := 1
		if intensity < 0 {
			intensity = -intensity
			phase = -1
		}
		if intensity == 0 {
			continue
		}
		if intensity > MaxPacketIntensity {
			intensity = MaxPacketIntensity
		}
		out = append(out, LightPacket{
			Direction:    k.dir,
			Intensity:    intensity,
			Polarization: k.polarization,
			Phase:        phase,
		})
	}
	return out
}
