// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-simulator/internal/simulation"
)

// FindSimulation finds a simulation by name in the results slice.
// Returns a pointer to the simulation if found, nil otherwise.
func FindSimulation(results []simulation.Simulation, name string) *simulation.Simulation {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
