package waveoptics

import (
	"encoding/json"
	"fmt"
	"os"
)

// BlockCfg is the JSON form of one placed block.
type BlockCfg struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`

	Type              string `json:"type"`
	PolarizationAngle Real   `json:"polarizationAngle,omitempty"`
	RotationAmount    Real   `json:"rotationAmount,omitempty"`
	Facing            string `json:"facing,omitempty"`
	AbsorptionRate    Real   `json:"absorptionRate,omitempty"`
	PhaseShift        Real   `json:"phaseShift,omitempty"`
	SplitRatio        Real   `json:"splitRatio,omitempty"`
	FocalLength       Real   `json:"focalLength,omitempty"`
	ScatterStrength   Real   `json:"scatterStrength,omitempty"`
	PortalID          string `json:"portalId,omitempty"`
	LinkedPortalID    string `json:"linkedPortalId,omitempty"`
}

// ScenarioCfg is a full simulation scenario.
type ScenarioCfg struct {
	WorldSize       int        `json:"worldSize"`
	MaxIterations   int        `json:"maxIterations,omitempty"`
	EnergyThreshold Real       `json:"energyThreshold,omitempty"`
	Out             string     `json:"out,omitempty"` // optional JSON export path
	Blocks          []BlockCfg `json:"blocks"`
}

// Build validates and constructs the runtime block config.
func (bc BlockCfg) Build() (*BlockConfig, error) {
	t, err := ParseBlockType(bc.Type)
	if err != nil {
		return nil, err
	}
	cfg := &BlockConfig{
		Type:              t,
		PolarizationAngle: bc.PolarizationAngle,
		RotationAmount:    bc.RotationAmount,
		AbsorptionRate:    bc.AbsorptionRate,
		PhaseShift:        bc.PhaseShift,
		SplitRatio:        bc.SplitRatio,
		FocalLength:       bc.FocalLength,
		ScatterStrength:   bc.ScatterStrength,
		PortalID:          bc.PortalID,
		LinkedPortalID:    bc.LinkedPortalID,
	}
	if bc.Facing != "" {
		facing, err := ParseDirection(bc.Facing)
		if err != nil {
			return nil, fmt.Errorf("block at (%d,%d,%d): %w", bc.X, bc.Y, bc.Z, err)
		}
		cfg.Facing = facing
	} else if t == Emitter || t == Mirror {
		return nil, fmt.Errorf("block at (%d,%d,%d): %s requires a facing", bc.X, bc.Y, bc.Z, t)
	}
	if cfg.AbsorptionRate < 0 || cfg.AbsorptionRate > 1 {
		return nil, fmt.Errorf("block at (%d,%d,%d): absorptionRate must be in [0,1]", bc.X, bc.Y, bc.Z)
	}
	if t == BeamSplitter && (cfg.SplitRatio < 0 || cfg.SplitRatio > 1) {
		return nil, fmt.Errorf("block at (%d,%d,%d): splitRatio must be in [0,1]", bc.X, bc.Y, bc.Z)
	}
	return cfg, nil
}

func loadScenario(path string) (*ScenarioCfg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg ScenarioCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.WorldSize <= 0 {
		cfg.WorldSize = 10
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.EnergyThreshold <= 0 {
		cfg.EnergyThreshold = DefaultEnergyThreshold
	}
	if len(cfg.Blocks) == 0 {
		return nil, fmt.Errorf("scenario has no blocks")
	}
	emitters := 0
	for _, b := range cfg.Blocks {
		if b.Type == "emitter" {
			emitters++
		}
	}
	if emitters == 0 {
		return nil, fmt.Errorf("scenario has no emitters")
	}
	DebugLog("Loaded scenario from %s: worldSize=%d, blocks=%d, emitters=%d",
		path, cfg.WorldSize, len(cfg.Blocks), emitters)
	return &cfg, nil
}
