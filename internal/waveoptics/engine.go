package waveoptics

import (
	"log"
	"sort"

	"github.com/google/uuid"
)

// Config holds the engine knobs exposed to the game layer.
type Config struct {
	// UseWaveOptics is accepted for compatibility with the old dual-engine
	// surface; the wave-optics path is the only propagation engine.
	UseWaveOptics   bool
	MaxIterations   int
	EnergyThreshold Real
}

func DefaultConfig() Config {
	return Config{
		UseWaveOptics:   true,
		MaxIterations:   DefaultMaxIterations,
		EnergyThreshold: DefaultEnergyThreshold,
	}
}

// Engine runs full propagation passes and keeps the finalized light-state
// map of the most recent pass. It holds no other cross-call state.
type Engine struct {
	cfg    Config
	states map[string]*LightState
	runID  string
}

func NewEngine() *Engine {
	return &Engine{
		cfg:    DefaultConfig(),
		states: make(map[string]*LightState),
	}
}

func (e *Engine) SetConfig(cfg Config) {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.EnergyThreshold <= 0 {
		cfg.EnergyThreshold = DefaultEnergyThreshold
	}
	e.cfg = cfg
}

func (e *Engine) GetConfig() Config { return e.cfg }

// RunID identifies the most recent propagation pass in logs and exports.
func (e *Engine) RunID() string { return e.runID }

// queueItem is the ephemeral BFS work unit.
type queueItem struct {
	pos   Vec3i
	light WaveLight
}

// visitKey deduplicates identical travel states to bound cycles (mirror
// galleries, portal loops). Distinct sources or directions through the same
// cell are not deduplicated.
type visitKey struct {
	source int
	pos    Vec3i
	dir    Direction
}

// propagation is the per-call state: queue, visited set, accumulation map
// and the emitter source-id counter. Nothing here survives the call.
type propagation struct {
	world      Accessor
	worldSize  int
	queue      []queueItem
	visited    map[visitKey]struct{}
	collected  map[string][]WaveLight
	nextSource int
}

// PositionLight pairs a grid position with its finalized light state.
type PositionLight struct {
	Position Vec3i       `json:"position"`
	State    *LightState `json:"state"`
}

// Propagate recomputes the light field from scratch: seeds a WaveLight at
// every emitter, walks the grid breadth-first through the element
// processors, then resolves interference per position. Degenerate work
// items are logged and dropped; the call itself always returns a usable
// (possibly partial) result.
func (e *Engine) Propagate(world Accessor, worldSize int) []PositionLight {
	if worldSize <= 0 {
		panic("world size must be positive")
	}
	e.runID = uuid.NewString()
	e.states = make(map[string]*LightState)

	p := &propagation{
		world:     world,
		worldSize: worldSize,
		visited:   make(map[visitKey]struct{}),
		collected: make(map[string][]WaveLight),
	}
	p.seedEmitters()

	iterations := 0
	for len(p.queue) > 0 {
		if iterations >= e.cfg.MaxIterations {
			log.Printf("waveoptics: run %s: %v after %d iterations, keeping partial result",
				e.runID, ErrIterationLimit, iterations)
			break
		}
		iterations++
		item := p.queue[0]
		p.queue = p.queue[1:]
		e.step(p, item)
	}

	return e.finalize(p)
}

// seedEmitters scans the world for emitter blocks in sorted position-key
// order and mints one coherence source per emitter instance.
func (p *propagation) seedEmitters() {
	keys := make([]string, 0)
	blocks := p.world.BlocksMap()
	for key, cfg := range blocks {
		if cfg != nil && cfg.Type == Emitter {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		pos, err := ParsePositionKey(key)
		if err != nil {
			log.Printf("waveoptics: skipping emitter: %v", err)
			continue
		}
		cfg := blocks[key]
		if !cfg.Facing.Valid() {
			log.Printf("waveoptics: skipping emitter at %s: %v", key, ErrInvalidDirection)
			continue
		}
		light := NewWaveLight(cfg.PolarizationAngle, cfg.Facing, p.nextSource)
		p.nextSource++
		p.queue = append(p.queue, queueItem{pos: pos, light: light})
	}
}

// step advances one queue item by one grid cell.
func (e *Engine) step(p *propagation, item queueItem) {
	light := item.light
	if !light.Jones.IsAboveThreshold(e.cfg.EnergyThreshold) {
		return
	}
	if !light.Direction.Valid() {
		log.Printf("waveoptics: run %s: dropping light at %s: %v",
			e.runID, item.pos.Key(), ErrInvalidDirection)
		return
	}

	next := item.pos.Add(light.Direction.Vec())
	if !inBounds(next, p.worldSize) {
		return
	}

	vk := visitKey{light.SourceID, next, light.Direction}
	if _, seen := p.visited[vk]; seen {
		return
	}
	p.visited[vk] = struct{}{}

	adv := light.advanced()
	nextKey := next.Key()
	p.collected[nextKey] = append(p.collected[nextKey], adv)

	block := p.world.GetBlock(next.X, next.Y, next.Z)
	outputs := []WaveLight{adv}
	if block != nil && block.Type != Air {
		proc := elementFor(block.Type)
		if proc != nil {
			outputs = proc.apply(adv, block)
		}
	}

	// A linked portal relocates the continuation to its twin's cell.
	continueAt := next
	if block != nil && block.Type == Portal && block.LinkedPortalID != "" {
		if target, _, ok := p.world.FindPortalByID(block.LinkedPortalID); ok {
			continueAt = target
		} else {
			DebugLog("dangling portal link %q at %s, passing through", block.LinkedPortalID, nextKey)
		}
	}

	for _, out := range outputs {
		if !out.finite() {
			log.Printf("waveoptics: run %s: dropping light at %s: %v",
				e.runID, nextKey, ErrNumericInstability)
			continue
		}
		if !out.Jones.IsAboveThreshold(e.cfg.EnergyThreshold) {
			continue
		}
		p.queue = append(p.queue, queueItem{pos: continueAt, light: out})
	}
}

// finalize resolves coherent interference per position, then discretizes
// through the legacy adapter, including its binary interference pass, so
// rendering output stays bit-compatible with the old scalar engine.
func (e *Engine) finalize(p *propagation) []PositionLight {
	keys := make([]string, 0, len(p.collected))
	for key := range p.collected {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]PositionLight, 0, len(keys))
	for _, key := range keys {
		resolved := resolveInterference(p.collected[key], e.cfg.EnergyThreshold)
		if len(resolved) == 0 {
			continue
		}
		packets := make([]LightPacket, 0, len(resolved))
		for _, l := range resolved {
			packets = append(packets, ToLightPacket(l))
		}
		packets = legacyInterfere(packets)
		if len(packets) == 0 {
			continue
		}
		pos, err := ParsePositionKey(key)
		if err != nil {
			log.Printf("waveoptics: run %s: %v", e.runID, err)
			continue
		}
		state := &LightState{Packets: packets}
		e.states[key] = state
		results = append(results, PositionLight{Position: pos, State: state})
	}
	DebugLog("run %s: %d lit positions", e.runID, len(results))
	return results
}
