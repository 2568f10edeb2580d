package waveoptics

import "math"

// Engine defaults and discretization constants.
const (
	DefaultMaxIterations   = 10000
	DefaultEnergyThreshold = 0.001

	// MaxPacketIntensity is the ceiling of the legacy discretized intensity scale.
	MaxPacketIntensity = 15

	// Simplified dispersion-free model: one grid cell equals one wavelength,
	// so every step adds a full 2π of phase.
	PhasePerCell = 2 * math.Pi

	// Tolerance for the Stokes realizability check.
	physTolerance = 1e-3

	// hot-loop constants
	epsMagnitude = 1e-12
)
