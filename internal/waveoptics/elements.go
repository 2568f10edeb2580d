package waveoptics

import "math"

// element processes a light arriving at a block: zero, one or two outputs.
// Processors are pure; they never touch the grid. Portals additionally
// relocate the queue item, which the engine handles after dispatch.
type element interface {
	apply(l WaveLight, cfg *BlockConfig) []WaveLight
}

var elementTable = map[BlockType]element{
	Solid:             solidElement{},
	Emitter:           solidElement{}, // an emitter hit from outside is an obstacle
	Polarizer:         polarizerElement{},
	Rotator:           rotatorElement{},
	Splitter:          splitterElement{},
	Mirror:            mirrorElement{},
	Absorber:          absorberElement{},
	PhaseShifterBlock: phaseShifterElement{},
	BeamSplitter:      beamSplitterElement{},
	QuarterWave:       quarterWaveElement{},
	HalfWave:          halfWaveElement{},
	Prism:             prismElement{},
	Lens:              lensElement{},
	Sensor:            sensorElement{},
	Portal:            portalElement{},
	Scatterer:         scattererElement{},
}

// elementFor returns the processor for a block type; nil means the light
// passes through unchanged (air).
func elementFor(t BlockType) element {
	return elementTable[t]
}

func degToRad(deg Real) Real { return deg * math.Pi / 180 }

type solidElement struct{}

func (solidElement) apply(WaveLight, *BlockConfig) []WaveLight { return nil }

type polarizerElement struct{}

func (polarizerElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	l.Jones = LinearPolarizer(degToRad(cfg.PolarizationAngle)).Apply(l.Jones)
	return []WaveLight{l}
}

type rotatorElement struct{}

func (rotatorElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	l.Jones = JonesRotator(degToRad(cfg.RotationAmount)).Apply(l.Jones)
	return []WaveLight{l}
}

// splitterElement is a polarizing beam splitter (Wollaston-style): the
// horizontal projection continues, the vertical projection is deflected.
type splitterElement struct{}

func (splitterElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	out := make([]WaveLight, 0, 2)

	h := l
	h.Jones = LinearPolarizer(0).Apply(l.Jones)
	if h.Jones.Intensity() > epsMagnitude {
		out = append(out, h)
	}

	v := l
	v.Jones = LinearPolarizer(math.Pi / 2).Apply(l.Jones)
	v.Direction = deflectionFor(l.Direction, cfg.Facing)
	if v.Jones.Intensity() > epsMagnitude {
		out = append(out, v)
	}
	return out
}

// deflectionFor picks the exit of a deflected arm: the block facing when it
// is perpendicular to travel, else a fixed perpendicular axis so output
// stays deterministic.
func deflectionFor(travel, facing Direction) Direction {
	if facing.Valid() && facing.IsPerpendicular(travel) {
		return facing
	}
	return travel.FirstPerpendicular()
}

type mirrorElement struct{}

func (mirrorElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	// Reflect only when the light arrives against the mirror face;
	// a hit on the back absorbs.
	if !cfg.Facing.Valid() || l.Direction != cfg.Facing.Opposite() {
		return nil
	}
	l.Direction = cfg.Facing
	l.Jones = MirrorFlip().Apply(l.Jones)
	l.GlobalPhase += math.Pi
	return []WaveLight{l}
}

type absorberElement struct{}

func (absorberElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	l.Jones = Attenuator(1 - cfg.AbsorptionRate).Apply(l.Jones)
	return []WaveLight{l}
}

type phaseShifterElement struct{}

func (phaseShifterElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	l.Jones = JonesPhaseShifter(cfg.PhaseShift).Apply(l.Jones)
	return []WaveLight{l}
}

// beamSplitterElement splits amplitude without touching polarization:
// sqrt(r) transmitted, sqrt(1-r) reflected sideways with a π/2 phase.
type beamSplitterElement struct{}

func (beamSplitterElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	r := cfg.SplitRatio
	if r < 0 {
		r = 0
	} else if r > 1 {
		r = 1
	}

	out := make([]WaveLight, 0, 2)
	t := l
	t.Jones = l.Jones.Scale(math.Sqrt(r))
	out = append(out, t)

	refl := l
	refl.Jones = l.Jones.Scale(math.Sqrt(1 - r))
	refl.Direction = deflectionFor(l.Direction, cfg.Facing)
	refl.GlobalPhase += math.Pi / 2
	out = append(out, refl)
	return out
}

type quarterWaveElement struct{}

func (quarterWaveElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	l.Jones = QuarterWavePlate(degToRad(cfg.PolarizationAngle)).Apply(l.Jones)
	return []WaveLight{l}
}

type halfWaveElement struct{}

func (halfWaveElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	l.Jones = HalfWavePlate(degToRad(cfg.PolarizationAngle)).Apply(l.Jones)
	return []WaveLight{l}
}

// prismElement redirects only light arriving perpendicular to its facing
// (discretized refraction; no dispersion).
type prismElement struct{}

func (prismElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	if cfg.Facing.Valid() && l.Direction.IsPerpendicular(cfg.Facing) {
		l.Direction = cfg.Facing
	}
	return []WaveLight{l}
}

// lensElement: converging lenses pass light through; diverging lenses split
// into two equal-amplitude arms.
type lensElement struct{}

func (lensElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	if cfg.FocalLength >= 0 {
		return []WaveLight{l}
	}
	straight := l
	straight.Jones = l.Jones.Scale(math.Sqrt(0.5))
	side := l
	side.Jones = l.Jones.Scale(math.Sqrt(0.5))
	side.Direction = l.Direction.FirstPerpendicular()
	return []WaveLight{straight, side}
}

type sensorElement struct{}

// Sensors are transparent: the recorded state at their cell is what the
// accumulation map already holds.
func (sensorElement) apply(l WaveLight, _ *BlockConfig) []WaveLight {
	return []WaveLight{l}
}

type portalElement struct{}

// The portal passes the light through untouched; the engine relocates the
// queue item to the linked portal's cell.
func (portalElement) apply(l WaveLight, _ *BlockConfig) []WaveLight {
	return []WaveLight{l}
}

// scattererElement models a depolarizing medium through the Mueller back-end:
// Jones → Stokes, attenuate and depolarize, re-emit the polarized part.
type scattererElement struct{}

func (scattererElement) apply(l WaveLight, cfg *BlockConfig) []WaveLight {
	m := MuellerDepolarizer(cfg.ScatterStrength).Mul(MuellerAttenuator(1 - cfg.AbsorptionRate))
	s := m.Apply(StokesFromJones(l.Jones))
	l.Jones = s.PolarizedJones()
	return []WaveLight{l}
}
