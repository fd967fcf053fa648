package system

import "github.com/lixenwraith/gridstrike/engine"

// RegisterAll wires the full system set into a world. Order here is
// irrelevant; the world sorts by priority
func RegisterAll(world *engine.World) {
	world.AddSystem(NewTransitionSystem(world))
	world.AddSystem(NewTimekeeperSystem(world))
	world.AddSystem(NewLifecycleSystem(world))
	world.AddSystem(NewSpawnSystem(world))
	world.AddSystem(NewScoreSystem(world))
	world.AddSystem(NewAdaptationSystem(world))
}
