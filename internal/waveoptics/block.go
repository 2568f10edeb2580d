package waveoptics

import "fmt"

// BlockType tags the optical element occupying a grid cell.
type BlockType uint8

const (
	Air BlockType = iota
	Solid
	Emitter
	Polarizer
	Rotator
	Splitter
	Mirror
	Absorber
	PhaseShifterBlock
	BeamSplitter
	QuarterWave
	HalfWave
	Prism
	Lens
	Sensor
	Portal
	Scatterer
	numBlockTypes
)

var blockTypeNames = [numBlockTypes]string{
	"air", "solid", "emitter", "polarizer", "rotator", "splitter", "mirror",
	"absorber", "phaseShifter", "beamSplitter", "quarterWave", "halfWave",
	"prism", "lens", "sensor", "portal", "scatterer",
}

func (t BlockType) String() string {
	if t >= numBlockTypes {
		return fmt.Sprintf("blockType(%d)", uint8(t))
	}
	return blockTypeNames[t]
}

// ParseBlockType maps a block type name to its tag.
func ParseBlockType(s string) (BlockType, error) {
	for i, name := range blockTypeNames {
		if s == name {
			return BlockType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown block type %q", s)
}

// BlockConfig is the per-cell element configuration. The world layer owns it;
// the engine treats it as read-only for the duration of a propagation pass.
type BlockConfig struct {
	Type BlockType

	PolarizationAngle Real // degrees; polarizer/emitter axis, waveplate fast axis
	RotationAmount    Real // degrees; rotator turn
	Facing            Direction
	AbsorptionRate    Real // 0..1; absorber and scatterer
	PhaseShift        Real // radians
	SplitRatio        Real // 0..1; non-polarizing beam splitter transmitted share
	FocalLength       Real // lens; >0 converging, <0 diverging
	ScatterStrength   Real // 0..1; scatterer depolarization
	PortalID          string
	LinkedPortalID    string
}
