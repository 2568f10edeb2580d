package waveoptics

import "math"

// WaveLight is the propagating unit: a Jones state tagged with its discrete
// travel direction, the phase accumulated along the path, the coherence
// source it was emitted from and the number of cells traveled.
type WaveLight struct {
	Jones       JonesVector
	Direction   Direction
	GlobalPhase Real
	SourceID    int
	PathLength  int
}

// NewWaveLight builds the unit-amplitude state an emitter launches:
// linear polarization at the configured angle (degrees).
func NewWaveLight(polarizationDeg Real, dir Direction, sourceID int) WaveLight {
	return WaveLight{
		Jones:     NewLinearJones(polarizationDeg*math.Pi/180, 1),
		Direction: dir,
		SourceID:  sourceID,
	}
}

func (l WaveLight) Intensity() Real { return l.Jones.Intensity() }

// advanced returns the light one cell further along its direction: path
// length grows by one and, since a cell spans one wavelength, the global
// phase grows by 2π.
func (l WaveLight) advanced() WaveLight {
	l.PathLength++
	l.GlobalPhase += PhasePerCell
	return l
}

// phased returns the Jones vector with the accumulated global phase applied
// as a complex rotation; this is the amplitude that actually interferes.
func (l WaveLight) phased() JonesVector {
	return l.Jones.ScaleComplex(FromPolar(1, l.GlobalPhase))
}

// finite guards against NaN/Inf amplitudes escaping a degenerate transform.
func (l WaveLight) finite() bool {
	return isFiniteC(l.Jones.Ex) && isFiniteC(l.Jones.Ey) && isFinite(l.GlobalPhase)
}
