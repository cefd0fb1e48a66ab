package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-simulator/pkg/amortization"
	"github.com/iwvelando/mortgage-simulator/pkg/constants"
	"github.com/iwvelando/mortgage-simulator/pkg/mathutil"
)

// LoanInput converts the scenario into engine input, turning the percentage
// rate into a fraction.
func (s Scenario) LoanInput() amortization.Input {
	return amortization.Input{
		Principal:  s.Principal,
		AnnualRate: mathutil.PercentToFraction(s.InterestRate),
		TermYears:  s.TermYears,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard failures are left to the engine, which rejects
// invalid loans when the scenario is simulated.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.ActiveScenarios()) == 0 {
		warnings = append(warnings, "no active scenarios configured")
	}

	seen := make(map[string]bool)
	for _, scenario := range c.Scenarios {
		if seen[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is defined more than once", scenario.Name))
		}
		seen[scenario.Name] = true

		if !scenario.Active {
			continue
		}
		warnings = append(warnings, scenario.warnings()...)
	}

	return warnings
}

func (s Scenario) warnings() []string {
	var warnings []string

	if s.TermYears > 0 && (s.TermYears < constants.MinTermYears || s.TermYears > constants.MaxTermYears) {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' term of %d years is outside the usual %d-%d year range",
			s.Name, s.TermYears, constants.MinTermYears, constants.MaxTermYears))
	}
	if s.InterestRate > constants.MaxReasonableRate {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' interest rate %.2f%% is unusually high",
			s.Name, s.InterestRate))
	}
	if s.InterestRate > 0 && s.InterestRate < constants.MinReasonableRate {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' interest rate %.4f%% looks like a fraction; rates are given in percent",
			s.Name, s.InterestRate))
	}
	if s.MonthlyBudget < 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' monthly budget %.2f is negative and will be ignored",
			s.Name, s.MonthlyBudget))
	}

	return warnings
}
