package waveoptics

import (
	"math"
	"math/cmplx"
)

// JonesVector holds the two complex field amplitudes of a fully polarized,
// fully coherent beam. Intensity is |Ex|²+|Ey|².
type JonesVector struct {
	Ex, Ey Complex
}

// NewLinearJones builds a linearly polarized vector at the given angle
// (radians from the x axis) with the given field amplitude.
func NewLinearJones(angle, amplitude Real) JonesVector {
	return JonesVector{
		Ex: complex(amplitude*math.Cos(angle), 0),
		Ey: complex(amplitude*math.Sin(angle), 0),
	}
}

// Intensity returns the optical power carried by the vector.
func (v JonesVector) Intensity() Real {
	ax := cmplx.Abs(v.Ex)
	ay := cmplx.Abs(v.Ey)
	return ax*ax + ay*ay
}

// Add is coherent superposition of field amplitudes.
func (v JonesVector) Add(o JonesVector) JonesVector {
	return JonesVector{v.Ex + o.Ex, v.Ey + o.Ey}
}

// Scale multiplies both amplitudes by a real factor.
func (v JonesVector) Scale(s Real) JonesVector {
	c := complex(s, 0)
	return JonesVector{v.Ex * c, v.Ey * c}
}

// ScaleComplex multiplies both amplitudes by a complex factor
// (attenuation and/or phase in one step).
func (v JonesVector) ScaleComplex(c Complex) JonesVector {
	return JonesVector{v.Ex * c, v.Ey * c}
}

// Normalize scales the vector to unit intensity.
// A (near) zero vector is returned unchanged.
func (v JonesVector) Normalize() JonesVector {
	i := v.Intensity()
	if i < epsMagnitude {
		return v
	}
	return v.Scale(1 / math.Sqrt(i))
}

func (v JonesVector) IsAboveThreshold(threshold Real) bool {
	return v.Intensity() >= threshold
}

// DiscretePolarization snaps the polarization ellipse orientation to the
// nearest of 0, 45, 90, 135 degrees (lossy, legacy discretization).
func (v JonesVector) DiscretePolarization() int {
	s := StokesFromJones(v)
	deg := s.OrientationAngle() * 180 / math.Pi // (-90, 90]
	if deg < 0 {
		deg += 180
	}
	snapped := int(math.Round(deg/45)) * 45
	return snapped % 180
}

// DiscretePhase reduces the continuous phase to the sign of the dominant
// component's real part: +1 or -1.
func (v JonesVector) DiscretePhase() int {
	dominant := v.Ex
	if cmplx.Abs(v.Ey) > cmplx.Abs(v.Ex) {
		dominant = v.Ey
	}
	if real(dominant) < 0 {
		return -1
	}
	return 1
}

// JonesMatrix is a 2×2 complex operator applied by left-multiplication.
type JonesMatrix struct {
	A, B, C, D Complex
}

// Apply computes E' = M·E.
func (m JonesMatrix) Apply(v JonesVector) JonesVector {
	return JonesVector{
		Ex: m.A*v.Ex + m.B*v.Ey,
		Ey: m.C*v.Ex + m.D*v.Ey,
	}
}

// Mul composes two operators (m applied after o).
func (m JonesMatrix) Mul(o JonesMatrix) JonesMatrix {
	return JonesMatrix{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
}

func JonesIdentity() JonesMatrix {
	return JonesMatrix{A: 1, D: 1}
}

// LinearPolarizer is the rank-1 projector onto the transmission axis at angle
// theta (radians). Malus's law follows from the projector algebra.
func LinearPolarizer(theta Real) JonesMatrix {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return JonesMatrix{
		A: complex(c*c, 0),
		B: complex(c*s, 0),
		C: complex(c*s, 0),
		D: complex(s*s, 0),
	}
}

// JonesRotator rotates the polarization plane by theta, lossless.
func JonesRotator(theta Real) JonesMatrix {
	c := complex(math.Cos(theta), 0)
	s := complex(math.Sin(theta), 0)
	return JonesMatrix{A: c, B: -s, C: s, D: c}
}

// Waveplate is a retarder with retardation delta and fast axis at theta:
// R(−θ)·diag(e^{iδ/2}, e^{−iδ/2})·R(θ), where R is the coordinate rotation
// (the inverse of JonesRotator).
func Waveplate(delta, theta Real) JonesMatrix {
	retard := JonesMatrix{
		A: FromPolar(1, delta/2),
		D: FromPolar(1, -delta/2),
	}
	return JonesRotator(theta).Mul(retard).Mul(JonesRotator(-theta))
}

// QuarterWavePlate has retardation π/2: linear in at ±45° from the fast axis
// comes out circular.
func QuarterWavePlate(fastAxis Real) JonesMatrix {
	return Waveplate(math.Pi/2, fastAxis)
}

// HalfWavePlate has retardation π: reflects polarization about the fast axis.
func HalfWavePlate(fastAxis Real) JonesMatrix {
	return Waveplate(math.Pi, fastAxis)
}

// Attenuator scales intensity by the given transmittance.
func Attenuator(transmittance Real) JonesMatrix {
	if transmittance < 0 {
		transmittance = 0
	}
	a := complex(math.Sqrt(transmittance), 0)
	return JonesMatrix{A: a, D: a}
}

// JonesPhaseShifter adds a global phase delta to both components.
func JonesPhaseShifter(delta Real) JonesMatrix {
	p := FromPolar(1, delta)
	return JonesMatrix{A: p, D: p}
}

// MirrorFlip flips one transverse axis on reflection.
func MirrorFlip() JonesMatrix {
	return JonesMatrix{A: 1, D: -1}
}
