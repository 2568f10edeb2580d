package waveoptics

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// propagationStats prints the verbose run summary enabled by the Debug var.
func propagationStats(cfg *ScenarioCfg, results []PositionLight, elapsed time.Duration) {
	packets := 0
	total := 0
	for _, r := range results {
		packets += len(r.State.Packets)
		for _, p := range r.State.Packets {
			total += p.Intensity
		}
	}
	fmt.Printf("world size: %d, blocks: %d, time: %s\n", cfg.WorldSize, len(cfg.Blocks), elapsed)
	fmt.Printf("lit positions: %d, packets: %d, total intensity: %d\n", len(results), packets, total)
}

// Run loads a scenario, propagates it once and prints a per-position packet
// summary. When the scenario names an output path, the full light-state map
// is exported there as JSON.
func Run(cfgPath string) error {
	cfg, err := loadScenario(cfgPath)
	if err != nil {
		return err
	}

	world := NewMapWorld()
	for _, bc := range cfg.Blocks {
		block, err := bc.Build()
		if err != nil {
			return err
		}
		world.SetBlock(bc.X, bc.Y, bc.Z, block)
	}

	engine := NewEngine()
	engine.SetConfig(Config{
		UseWaveOptics:   true,
		MaxIterations:   cfg.MaxIterations,
		EnergyThreshold: cfg.EnergyThreshold,
	})

	start := time.Now()
	results := engine.Propagate(world, cfg.WorldSize)
	elapsed := time.Since(start)
	DebugLog("run %s: propagated in %s", engine.RunID(), elapsed)

	if Debug {
		propagationStats(cfg, results, elapsed)
	}

	fmt.Printf("run %s: %d lit positions\n", engine.RunID(), len(results))
	for _, r := range results {
		for _, p := range r.State.Packets {
			fmt.Printf("  %-12s %s intensity=%d polarization=%d phase=%+d\n",
				r.Position.Key(), p.Direction, p.Intensity, p.Polarization, p.Phase)
		}
	}

	if cfg.Out != "" {
		data, err := json.MarshalIndent(engine.GetAllLightStates(), "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Out, data, 0o644); err != nil {
			return err
		}
		DebugLog("exported light states to %s", cfg.Out)
	}
	return nil
}
