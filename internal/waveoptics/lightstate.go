package waveoptics

// LightState is the wire format the rendering layer reads: the discretized
// packets present at one grid position.
type LightState struct {
	Packets []LightPacket `json:"packets"`
}

// GetLightState returns the finalized state at a position, or nil.
func (e *Engine) GetLightState(x, y, z int) *LightState {
	return e.states[Vec3i{x, y, z}.Key()]
}

// GetTotalLightIntensity sums packet intensities at a position on the
// discretized 0..15 scale.
func (e *Engine) GetTotalLightIntensity(x, y, z int) int {
	state := e.GetLightState(x, y, z)
	if state == nil {
		return 0
	}
	total := 0
	for _, p := range state.Packets {
		total += p.Intensity
	}
	if total > MaxPacketIntensity {
		total = MaxPacketIntensity
	}
	return total
}

// GetAllLightStates returns the full light-state map of the last pass,
// keyed by canonical position key.
func (e *Engine) GetAllLightStates() map[string]*LightState {
	out := make(map[string]*LightState, len(e.states))
	for k, v := range e.states {
		out[k] = v
	}
	return out
}

// Clear drops the result of the last pass.
func (e *Engine) Clear() {
	e.states = make(map[string]*LightState)
	e.runID = ""
}
