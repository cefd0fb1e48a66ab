package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-simulator/internal/config"
	"github.com/iwvelando/mortgage-simulator/pkg/amortization"
	"go.uber.org/zap"
)

func TestGetSimulations(t *testing.T) {
	conf := config.Configuration{Scenarios: []config.Scenario{
		{Name: "baseline", Active: true, Principal: 60000, InterestRate: 2.3, TermYears: 20},
		{Name: "parked", Active: false, Principal: 80000, InterestRate: 3, TermYears: 25},
		{Name: "ten year", Active: true, Principal: 100000, InterestRate: 5, TermYears: 10},
	}}

	results, err := GetSimulations(context.Background(), zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetSimulations() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 simulations, got %d", len(results))
	}
	if results[0].Name != "baseline" || results[1].Name != "ten year" {
		t.Errorf("unexpected order %q, %q", results[0].Name, results[1].Name)
	}

	baseline := results[0]
	if baseline.Result.Annuity.Months() != 240 {
		t.Errorf("expected 240 months, got %d", baseline.Result.Annuity.Months())
	}
	if math.Abs(baseline.Result.Input.AnnualRate-0.023) > 1e-12 {
		t.Errorf("expected rate converted to a fraction, got %v", baseline.Result.Input.AnnualRate)
	}
	if baseline.Charts.YAxisMax != 400 {
		t.Errorf("expected chart ceiling 400, got %v", baseline.Charts.YAxisMax)
	}
	if len(baseline.Charts.Charts) != 2 {
		t.Errorf("expected two charts, got %d", len(baseline.Charts.Charts))
	}
}

func TestGetSimulationsManyScenariosKeepOrder(t *testing.T) {
	var conf config.Configuration
	for i := 0; i < 50; i++ {
		conf.Scenarios = append(conf.Scenarios, config.Scenario{
			Name:         fmt.Sprintf("scenario-%02d", i),
			Active:       true,
			Principal:    50000 + float64(i)*1000,
			InterestRate: 1 + float64(i%10)*0.5,
			TermYears:    6 + i%35,
		})
	}

	results, err := GetSimulations(context.Background(), nil, conf)
	if err != nil {
		t.Fatalf("GetSimulations() error = %v", err)
	}
	if len(results) != len(conf.Scenarios) {
		t.Fatalf("expected %d simulations, got %d", len(conf.Scenarios), len(results))
	}
	for i, sim := range results {
		scenario := conf.Scenarios[i]
		if sim.Name != scenario.Name {
			t.Fatalf("position %d: got %q, expected %q", i, sim.Name, scenario.Name)
		}
		if sim.Result.Input.Principal != scenario.Principal {
			t.Fatalf("%s: principal %v, expected %v", sim.Name, sim.Result.Input.Principal, scenario.Principal)
		}
	}
}

func TestGetSimulationsInvalidScenario(t *testing.T) {
	conf := config.Configuration{Scenarios: []config.Scenario{
		{Name: "fine", Active: true, Principal: 60000, InterestRate: 2.3, TermYears: 20},
		{Name: "broken", Active: true, Principal: 0, InterestRate: 2.3, TermYears: 20},
	}}

	results, err := GetSimulations(context.Background(), zap.NewNop(), conf)
	if err == nil {
		t.Fatal("expected error for invalid scenario")
	}
	if !errors.Is(err, amortization.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("expected scenario name in error, got %v", err)
	}
	if results != nil {
		t.Errorf("expected no partial results, got %d", len(results))
	}
}

func TestGetSimulationsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conf := config.Configuration{Scenarios: []config.Scenario{
		{Name: "baseline", Active: true, Principal: 60000, InterestRate: 2.3, TermYears: 20},
	}}

	_, err := GetSimulations(ctx, zap.NewNop(), conf)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGetSimulationsNoActiveScenarios(t *testing.T) {
	conf := config.Configuration{Scenarios: []config.Scenario{
		{Name: "parked", Active: false, Principal: 60000, InterestRate: 2.3, TermYears: 20},
	}}

	results, err := GetSimulations(context.Background(), zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetSimulations() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no simulations, got %d", len(results))
	}
}

func TestSimulate(t *testing.T) {
	sim, err := Simulate(config.Scenario{Name: "zero", Principal: 60000, InterestRate: 0, TermYears: 20})
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if sim.Result.Annuity.TotalCost != 60000 || sim.Result.Linear.TotalCost != 60000 {
		t.Errorf("zero rate should cost exactly the principal, got %v / %v",
			sim.Result.Annuity.TotalCost, sim.Result.Linear.TotalCost)
	}
}
