// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/mortgage-simulator/internal/simulation"
	"github.com/iwvelando/mortgage-simulator/pkg/constants"
	"github.com/iwvelando/mortgage-simulator/pkg/format"
	"github.com/iwvelando/mortgage-simulator/pkg/mathutil"
	"github.com/iwvelando/mortgage-simulator/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Write renders the simulations to w in the requested format.
func Write(w io.Writer, outputFormat string, sims []simulation.Simulation) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		return CsvFormat(w, sims)
	case constants.OutputFormatJSON:
		return JSONFormat(w, sims)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, sims)
	default:
		return PrettyFormat(w, sims)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, sims []simulation.Simulation) error {
	for i, sim := range sims {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "--- Results for scenario %s ---\n%s\n", sim.Name, sim.Charts.Description); err != nil {
			return err
		}
		for _, c := range sim.Charts.Charts {
			if _, err := fmt.Fprintln(w, c.Title); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Chart scale: 0 - %s\n", format.Currency(sim.Charts.YAxisMax)); err != nil {
			return err
		}

		for _, schedule := range sim.Result.Schedules() {
			if _, err := fmt.Fprintf(w, "\n%s schedule\n", schedule.Method.Label()); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Month | Payment | Interest | Principal | Balance\n"); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "_____ | _______ | ________ | _________ | _______\n"); err != nil {
				return err
			}
			for _, row := range schedule.Rows {
				if _, err := fmt.Fprintf(w, "%5d | %s | %s | %s | %s\n", row.Month,
					format.NumericCurrency(row.Payment),
					format.NumericCurrency(row.Interest),
					format.NumericCurrency(row.PrincipalPaid),
					format.NumericCurrency(row.RemainingBalance)); err != nil {
					return err
				}
			}
		}

		if err := writeRecommendations(w, sim); err != nil {
			return err
		}
	}
	return nil
}

func writeRecommendations(w io.Writer, sim simulation.Simulation) error {
	recommendations := sim.Metrics.TermRecommendations
	if len(recommendations) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nTerm recommendations (budget %s)\n", format.Currency(recommendations[0].Budget)); err != nil {
		return err
	}
	for _, rec := range recommendations {
		status := "fits"
		if !rec.Feasible {
			status = "exceeds budget"
		}
		if _, err := fmt.Fprintf(w, "%s: %d years, max %s per month, total %s (%s)\n",
			rec.Method, rec.TermYears, format.Currency(rec.MaxPayment), format.Currency(rec.TotalCost), status); err != nil {
			return err
		}
		for _, note := range rec.Notes {
			if _, err := fmt.Fprintf(w, "  - %s\n", note); err != nil {
				return err
			}
		}
	}
	return nil
}

// CsvFormat outputs one row per scenario, method and month.
func CsvFormat(w io.Writer, sims []simulation.Simulation) error {
	writer := csv.NewWriter(w)
	header := []string{"scenario", "method", "month", "payment", "interest", "principal_paid", "remaining_balance"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, sim := range sims {
		for _, schedule := range sim.Result.Schedules() {
			for _, row := range schedule.Rows {
				record := []string{
					sim.Name,
					string(schedule.Method),
					strconv.Itoa(row.Month),
					decimal(row.Payment),
					decimal(row.Interest),
					decimal(row.PrincipalPaid),
					decimal(row.RemainingBalance),
				}
				if err := writer.Write(record); err != nil {
					return err
				}
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// JSONFormat outputs the simulations as indented JSON.
func JSONFormat(w io.Writer, sims []simulation.Simulation) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sims)
}

// YAMLFormat outputs the simulations as YAML.
func YAMLFormat(w io.Writer, sims []simulation.Simulation) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(sims); err != nil {
		return err
	}
	return encoder.Close()
}

// decimal renders two decimals and drops the sign of floating residue.
func decimal(v float64) string {
	return strconv.FormatFloat(mathutil.Round(v), 'f', 2, 64)
}
