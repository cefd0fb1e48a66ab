// Package optimizer searches for the shortest mortgage term whose monthly
// payments fit within a scenario's budget.
package optimizer

import (
	"fmt"

	"github.com/iwvelando/mortgage-simulator/internal/config"
	"github.com/iwvelando/mortgage-simulator/internal/simulation"
	"github.com/iwvelando/mortgage-simulator/pkg/amortization"
	"github.com/iwvelando/mortgage-simulator/pkg/constants"
	"github.com/iwvelando/mortgage-simulator/pkg/format"
	"github.com/iwvelando/mortgage-simulator/pkg/mathutil"
	"github.com/iwvelando/mortgage-simulator/pkg/optimization"
	"go.uber.org/zap"
)

// Runner evaluates term recommendations for every budgeted scenario.
type Runner struct {
	logger   *zap.Logger
	conf     *config.Configuration
	minYears int
	maxYears int
}

// Result summarizes optimizer recommendations keyed by scenario name.
type Result struct {
	Summaries map[string][]optimization.Summary
}

// Empty indicates whether any recommendations were produced.
func (r Result) Empty() bool {
	return len(r.Summaries) == 0
}

// Apply attaches optimizer summaries to the provided simulations.
func (r Result) Apply(sims []simulation.Simulation) {
	if len(r.Summaries) == 0 {
		return
	}
	for i := range sims {
		summaries, ok := r.Summaries[sims[i].Name]
		if !ok {
			continue
		}
		metrics := sims[i].Metrics
		metrics.TermRecommendations = append(metrics.TermRecommendations, summaries...)
		sims[i].Metrics = metrics
	}
}

// NewRunner constructs a Runner for the provided configuration using the
// practical term range.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		logger:   logger,
		conf:     conf,
		minYears: constants.MinTermYears,
		maxYears: constants.MaxTermYears,
	}, nil
}

// Run produces recommendations for every active scenario with a positive
// monthly budget.
func (r *Runner) Run() (*Result, error) {
	summaries := make(map[string][]optimization.Summary)

	for _, scenario := range r.conf.ActiveScenarios() {
		if scenario.MonthlyBudget <= 0 {
			continue
		}
		for _, method := range amortization.Methods() {
			summary, err := RecommendTerm(scenario, method, r.minYears, r.maxYears)
			if err != nil {
				return nil, fmt.Errorf("optimizer: scenario %s: %w", scenario.Name, err)
			}
			summaries[scenario.Name] = append(summaries[scenario.Name], summary)

			r.logger.Info("optimizer evaluated term",
				zap.String("op", "optimizer.Run"),
				zap.String("scenario", scenario.Name),
				zap.String("method", summary.Method),
				zap.Float64("budget", summary.Budget),
				zap.Int("termYears", summary.TermYears),
				zap.Float64("maxPayment", summary.MaxPayment),
				zap.Float64("totalCost", summary.TotalCost),
				zap.Int("iterations", summary.Iterations),
				zap.Bool("feasible", summary.Feasible),
			)
		}
	}

	return &Result{Summaries: summaries}, nil
}

// RecommendTerm scans terms from minYears to maxYears and returns the
// shortest one whose highest monthly payment under method fits the scenario
// budget. Shorter terms always cost less in total, so the first affordable
// term is also the cheapest. When no term fits, the summary describes the
// longest term and is marked infeasible.
func RecommendTerm(scenario config.Scenario, method amortization.Method, minYears, maxYears int) (optimization.Summary, error) {
	if minYears <= 0 || maxYears < minYears {
		return optimization.Summary{}, fmt.Errorf("invalid term range %d-%d", minYears, maxYears)
	}

	summary := optimization.Summary{
		Method: string(method),
		Budget: scenario.MonthlyBudget,
	}

	for years := minYears; years <= maxYears; years++ {
		in := scenario.LoanInput()
		in.TermYears = years
		result, err := in.Compute()
		if err != nil {
			return optimization.Summary{}, err
		}
		schedule, ok := result.Schedule(method)
		if !ok {
			return optimization.Summary{}, fmt.Errorf("unknown repayment method %q", method)
		}

		summary.Iterations++
		summary.TermYears = years
		summary.Months = schedule.Months()
		summary.MaxPayment = schedule.MaxPayment()
		summary.TotalCost = schedule.TotalCost
		summary.TotalInterest = schedule.TotalInterest

		// Payments are settled in cents, so residue below a cent never breaks the budget.
		if mathutil.Round(summary.MaxPayment) <= mathutil.Round(scenario.MonthlyBudget) {
			summary.Feasible = true
			break
		}
	}

	if !summary.Feasible {
		summary.Notes = append(summary.Notes, fmt.Sprintf("even a %d year term requires %s per month, above the %s budget",
			summary.TermYears, format.Currency(summary.MaxPayment), format.Currency(summary.Budget)))
		return summary, nil
	}

	summary.Notes = append(summary.Notes, fmt.Sprintf("shortest affordable term is %d years at most %s per month",
		summary.TermYears, format.Currency(summary.MaxPayment)))

	if scenario.TermYears > summary.TermYears {
		configured, err := scenario.LoanInput().Compute()
		if err == nil {
			schedule, ok := configured.Schedule(method)
			if extra := schedule.TotalCost - summary.TotalCost; ok && !mathutil.IsZero(extra) {
				summary.Notes = append(summary.Notes, fmt.Sprintf("configured %d year term costs %s more in total",
					scenario.TermYears, format.Currency(extra)))
			}
		}
	}

	return summary, nil
}
