package component

// Input is the per-frame command state the host decodes from its devices.
type Input struct {
	Approach bool
	Retreat  bool
	OrbitCW  bool
	OrbitCCW bool

	FireHeld   bool
	SpawnHeld  bool
	RemoveHeld bool
}
