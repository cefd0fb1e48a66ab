// Package chart derives the data a front end needs to plot repayment
// schedules as stacked principal/interest areas. It does not render anything.
package chart

import (
	"fmt"

	"github.com/iwvelando/mortgage-simulator/pkg/amortization"
	"github.com/iwvelando/mortgage-simulator/pkg/constants"
	"github.com/iwvelando/mortgage-simulator/pkg/format"
	"github.com/iwvelando/mortgage-simulator/pkg/mathutil"
)

// Chart holds the series for one repayment method.
type Chart struct {
	Method    amortization.Method `json:"method" yaml:"method"`
	Title     string              `json:"title" yaml:"title"`
	Months    []int               `json:"months" yaml:"months"`
	Principal []float64           `json:"principal" yaml:"principal"`
	Interest  []float64           `json:"interest" yaml:"interest"`
	YAxisMax  float64             `json:"yAxisMax" yaml:"yAxisMax"`
}

// Set groups the charts that are displayed side by side. Both charts share
// the same y-axis ceiling so they can be compared visually.
type Set struct {
	TermLine    string  `json:"termLine" yaml:"termLine"`
	Description string  `json:"description" yaml:"description"`
	YAxisMax    float64 `json:"yAxisMax" yaml:"yAxisMax"`
	Charts      []Chart `json:"charts" yaml:"charts"`
}

// Build derives the chart set for a computed result.
func Build(result amortization.Result) Set {
	yMax := YAxisMax(result)
	set := Set{
		TermLine:    TermLine(result.Input.TermYears),
		Description: Description(result.Input),
		YAxisMax:    yMax,
	}
	for _, s := range result.Schedules() {
		set.Charts = append(set.Charts, newChart(s, yMax))
	}
	return set
}

func newChart(s amortization.Schedule, yMax float64) Chart {
	c := Chart{
		Method:    s.Method,
		Title:     Title(s),
		Months:    make([]int, len(s.Rows)),
		Principal: make([]float64, len(s.Rows)),
		Interest:  make([]float64, len(s.Rows)),
		YAxisMax:  yMax,
	}
	for i, row := range s.Rows {
		c.Months[i] = row.Month
		c.Principal[i] = row.PrincipalPaid
		c.Interest[i] = row.Interest
	}
	return c
}

// YAxisMax returns the largest first-month payment across both schedules,
// rounded up to the next multiple of the chart scale step.
func YAxisMax(result amortization.Result) float64 {
	highest := 0.0
	for _, s := range result.Schedules() {
		if first := s.FirstPayment(); first > highest {
			highest = first
		}
	}
	return mathutil.CeilToStep(highest, constants.ChartScaleStep)
}

// Title returns the headline for a schedule's chart.
func Title(s amortization.Schedule) string {
	return fmt.Sprintf("%s mortgage: total expense = %s", s.Method.Label(), format.Currency(s.TotalCost))
}

// TermLine describes the term in years and months.
func TermLine(termYears int) string {
	return fmt.Sprintf("%d years mortgage (%d months)", termYears, termYears*constants.MonthsPerYear)
}

// Description summarizes the inputs a chart set was built from.
func Description(in amortization.Input) string {
	return fmt.Sprintf("Results for a %s for capital of %s, with a %s interest rate.",
		TermLine(in.TermYears), format.Currency(in.Principal), format.Percent(mathutil.FractionToPercent(in.AnnualRate)))
}
