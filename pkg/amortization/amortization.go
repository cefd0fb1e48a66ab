// Package amortization computes monthly mortgage repayment schedules under the
// constant-annuity ("French") and constant-principal ("Italian") methods.
//
// Every function in this package is a pure computation over its arguments and
// is safe for concurrent use.
package amortization

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-simulator/pkg/constants"
)

// ErrInvalidInput is returned when a loan input cannot produce a schedule.
var ErrInvalidInput = errors.New("invalid loan input")

// Method identifies a repayment method.
type Method string

const (
	// Annuity repays with a constant monthly payment.
	Annuity Method = "annuity"
	// Linear repays a constant share of principal each month.
	Linear Method = "linear"
)

// Methods returns the supported methods in display order.
func Methods() []Method {
	return []Method{Annuity, Linear}
}

// Label returns the human-readable name of the method.
func (m Method) Label() string {
	switch m {
	case Annuity:
		return "Annuity"
	case Linear:
		return "Linear"
	default:
		return string(m)
	}
}

// Input holds the loan parameters. AnnualRate is a fraction (0.023 for 2.3%).
type Input struct {
	Principal  float64 `json:"principal" yaml:"principal"`
	AnnualRate float64 `json:"annualRate" yaml:"annualRate"`
	TermYears  int     `json:"termYears" yaml:"termYears"`
}

// Months returns the number of monthly installments.
func (in Input) Months() int {
	return in.TermYears * constants.MonthsPerYear
}

// MonthlyRate returns the periodic interest rate.
func (in Input) MonthlyRate() float64 {
	return in.AnnualRate / constants.MonthsPerYear
}

// Validate reports whether the input can produce a schedule.
func (in Input) Validate() error {
	if !(in.Principal > 0) || math.IsInf(in.Principal, 1) {
		return fmt.Errorf("%w: principal must be a positive finite amount, got %v", ErrInvalidInput, in.Principal)
	}
	if in.TermYears <= 0 {
		return fmt.Errorf("%w: term must be at least one year, got %d", ErrInvalidInput, in.TermYears)
	}
	if in.TermYears > constants.MaxComputableTermYears {
		return fmt.Errorf("%w: term must be at most %d years, got %d", ErrInvalidInput, constants.MaxComputableTermYears, in.TermYears)
	}
	if !(in.AnnualRate >= 0) || math.IsInf(in.AnnualRate, 1) {
		return fmt.Errorf("%w: annual rate must be a non-negative finite fraction, got %v", ErrInvalidInput, in.AnnualRate)
	}
	return nil
}

// Compute builds both schedules for the input.
func (in Input) Compute() (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	months := in.Months()
	monthlyRate := in.MonthlyRate()

	result := Result{
		Input:   in,
		Annuity: annuitySchedule(in.Principal, monthlyRate, months),
		Linear:  linearSchedule(in.Principal, monthlyRate, months),
	}
	// Any overflowing row makes the totals non-finite.
	for _, s := range result.Schedules() {
		if !isFinite(s.TotalCost) || !isFinite(s.TotalInterest) {
			return Result{}, fmt.Errorf("%w: %s schedule overflows for principal %v at annual rate %v",
				ErrInvalidInput, s.Method, in.Principal, in.AnnualRate)
		}
	}
	return result, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Compute builds the annuity and linear schedules for a loan of principal
// repaid over termYears at annualRate (a fraction).
func Compute(principal, annualRate float64, termYears int) (Result, error) {
	return Input{Principal: principal, AnnualRate: annualRate, TermYears: termYears}.Compute()
}

// AnnuityPayment calculates the constant monthly payment using the standard
// amortization formula. A zero rate degenerates to straight-line repayment.
func AnnuityPayment(principal, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(months)))
}

func annuitySchedule(principal, monthlyRate float64, months int) Schedule {
	payment := AnnuityPayment(principal, monthlyRate, months)
	rows := make([]Row, months)
	balance := principal
	for i := range rows {
		interest := balance * monthlyRate
		principalPaid := payment - interest
		balance -= principalPaid
		rows[i] = Row{
			Month:            i + 1,
			Payment:          payment,
			Interest:         interest,
			PrincipalPaid:    principalPaid,
			RemainingBalance: balance,
		}
	}
	return newSchedule(Annuity, rows)
}

func linearSchedule(principal, monthlyRate float64, months int) Schedule {
	principalPaid := principal / float64(months)
	rows := make([]Row, months)
	balance := principal
	for i := range rows {
		interest := balance * monthlyRate
		balance -= principalPaid
		rows[i] = Row{
			Month:            i + 1,
			Payment:          principalPaid + interest,
			Interest:         interest,
			PrincipalPaid:    principalPaid,
			RemainingBalance: balance,
		}
	}
	return newSchedule(Linear, rows)
}

func newSchedule(method Method, rows []Row) Schedule {
	s := Schedule{Method: method, Rows: rows}
	for _, row := range rows {
		s.TotalCost += row.Payment
		s.TotalInterest += row.Interest
	}
	return s
}
