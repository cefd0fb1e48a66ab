// Package simulation defines the data structures related to a simulated
// scenario and includes functions for computing them.
package simulation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/iwvelando/mortgage-simulator/internal/config"
	"github.com/iwvelando/mortgage-simulator/pkg/amortization"
	"github.com/iwvelando/mortgage-simulator/pkg/chart"
	"github.com/iwvelando/mortgage-simulator/pkg/optimization"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Simulation holds all information related to a specific scenario.
type Simulation struct {
	Name    string              `json:"name" yaml:"name"`
	Result  amortization.Result `json:"result" yaml:"result"`
	Charts  chart.Set           `json:"charts" yaml:"charts"`
	Metrics Metrics             `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// Metrics holds derived figures attached after the schedules are computed.
type Metrics struct {
	TermRecommendations []optimization.Summary `json:"termRecommendations,omitempty" yaml:"termRecommendations,omitempty"`
}

// GetSimulations computes every active scenario. Scenarios are evaluated
// concurrently; the returned slice follows configuration order. The first
// failing scenario cancels the remaining work and its error is returned.
func GetSimulations(ctx context.Context, logger *zap.Logger, conf config.Configuration) ([]Simulation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var scenarios []config.Scenario
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "simulation.GetSimulations"),
			)
			continue
		}
		scenarios = append(scenarios, scenario)
	}

	results := make([]Simulation, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, scenario := range scenarios {
		i, scenario := i, scenario
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sim, err := Simulate(scenario)
			if err != nil {
				return err
			}
			logger.Debug(fmt.Sprintf("computed scenario %s", scenario.Name),
				zap.String("op", "simulation.GetSimulations"),
				zap.Int("months", sim.Result.Input.Months()),
				zap.Float64("annuityTotal", sim.Result.Annuity.TotalCost),
				zap.Float64("linearTotal", sim.Result.Linear.TotalCost),
				zap.Float64("annuityResidual", sim.Result.Annuity.FinalBalance()),
			)
			results[i] = sim
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Simulate computes a single scenario.
func Simulate(scenario config.Scenario) (Simulation, error) {
	result, err := scenario.LoanInput().Compute()
	if err != nil {
		return Simulation{}, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	return Simulation{
		Name:   scenario.Name,
		Result: result,
		Charts: chart.Build(result),
	}, nil
}
