package physicsext

import (
	"errors"

	"raypick/internal/engine"
	"raypick/internal/physics"
)

var ErrNoSimulation = errors.New("scene has no physics simulation")

// GetSimulation returns the simulation attached to the scene c belongs to.
func GetSimulation(c engine.Component) (*physics.Simulation, error) {
	if c == nil || c.GetGameObject() == nil {
		return nil, ErrNoSimulation
	}
	sim := engine.GetService[*physics.Simulation](c.GetGameObject().Scene)
	if sim == nil {
		return nil, ErrNoSimulation
	}
	return sim, nil
}
