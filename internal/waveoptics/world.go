package waveoptics

// Accessor is the read-only view of the voxel world the engine consumes.
// The world layer must not mutate blocks while a propagation pass runs.
type Accessor interface {
	GetBlock(x, y, z int) *BlockConfig
	BlocksMap() map[string]*BlockConfig
	FindPortalByID(id string) (Vec3i, *BlockConfig, bool)
}

// MapWorld is the in-memory Accessor used by the scenario runner and tests.
type MapWorld struct {
	blocks map[string]*BlockConfig
}

func NewMapWorld() *MapWorld {
	return &MapWorld{blocks: make(map[string]*BlockConfig)}
}

func (w *MapWorld) SetBlock(x, y, z int, cfg *BlockConfig) {
	w.blocks[Vec3i{x, y, z}.Key()] = cfg
}

func (w *MapWorld) RemoveBlock(x, y, z int) {
	delete(w.blocks, Vec3i{x, y, z}.Key())
}

func (w *MapWorld) GetBlock(x, y, z int) *BlockConfig {
	return w.blocks[Vec3i{x, y, z}.Key()]
}

func (w *MapWorld) BlocksMap() map[string]*BlockConfig {
	return w.blocks
}

func (w *MapWorld) FindPortalByID(id string) (Vec3i, *BlockConfig, bool) {
	if id == "" {
		return Vec3i{}, nil, false
	}
	for key, cfg := range w.blocks {
		if cfg == nil || cfg.Type != Portal || cfg.PortalID != id {
			continue
		}
		pos, err := ParsePositionKey(key)
		if err != nil {
			continue
		}
		return pos, cfg, true
	}
	return Vec3i{}, nil, false
}
