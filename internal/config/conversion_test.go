package config

import (
	"math"
	"strings"
	"testing"
)

func TestLoanInput(t *testing.T) {
	tests := []struct {
		name         string
		scenario     Scenario
		expectedRate float64
	}{
		{"Percent to fraction", Scenario{Principal: 60000, InterestRate: 2.3, TermYears: 20}, 0.023},
		{"Whole percent", Scenario{Principal: 100000, InterestRate: 5, TermYears: 10}, 0.05},
		{"Zero rate", Scenario{Principal: 60000, InterestRate: 0, TermYears: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.scenario.LoanInput()
			if math.Abs(in.AnnualRate-tt.expectedRate) > 1e-12 {
				t.Errorf("AnnualRate = %v, expected %v", in.AnnualRate, tt.expectedRate)
			}
			if in.Principal != tt.scenario.Principal || in.TermYears != tt.scenario.TermYears {
				t.Errorf("unexpected input %+v", in)
			}
		})
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		conf     Configuration
		contains []string
	}{
		{
			name:     "No active scenarios",
			conf:     Configuration{Scenarios: []Scenario{{Name: "off", Principal: 1000, TermYears: 10}}},
			contains: []string{"no active scenarios"},
		},
		{
			name: "Duplicate names",
			conf: Configuration{Scenarios: []Scenario{
				{Name: "same", Active: true, Principal: 1000, InterestRate: 2, TermYears: 10},
				{Name: "same", Active: true, Principal: 2000, InterestRate: 2, TermYears: 10},
			}},
			contains: []string{"defined more than once"},
		},
		{
			name: "Term outside slider range",
			conf: Configuration{Scenarios: []Scenario{
				{Name: "short", Active: true, Principal: 1000, InterestRate: 2, TermYears: 3},
				{Name: "long", Active: true, Principal: 1000, InterestRate: 2, TermYears: 50},
			}},
			contains: []string{"'short' term of 3 years", "'long' term of 50 years"},
		},
		{
			name: "Suspicious rates",
			conf: Configuration{Scenarios: []Scenario{
				{Name: "high", Active: true, Principal: 1000, InterestRate: 30, TermYears: 10},
				{Name: "fraction", Active: true, Principal: 1000, InterestRate: 0.023, TermYears: 10},
			}},
			contains: []string{"unusually high", "looks like a fraction"},
		},
		{
			name: "Negative budget",
			conf: Configuration{Scenarios: []Scenario{
				{Name: "budget", Active: true, Principal: 1000, InterestRate: 2, TermYears: 10, MonthlyBudget: -5},
			}},
			contains: []string{"budget -5.00 is negative"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			joined := strings.Join(warnings, "\n")
			for _, expected := range tt.contains {
				if !strings.Contains(joined, expected) {
					t.Errorf("expected warning containing %q, got %v", expected, warnings)
				}
			}
		})
	}
}

func TestValidateConfigurationSkipsInactive(t *testing.T) {
	conf := Configuration{Scenarios: []Scenario{
		{Name: "ok", Active: true, Principal: 60000, InterestRate: 2.3, TermYears: 20},
		{Name: "off", Active: false, Principal: 60000, InterestRate: 90, TermYears: 90},
	}}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected inactive scenario to be ignored, got %v", warnings)
	}
}
