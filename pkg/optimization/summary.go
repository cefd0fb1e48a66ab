// Package optimization provides shared data structures for optimization results.
package optimization

// Summary captures the outcome of a term search for one repayment method.
type Summary struct {
	Method        string   `json:"method" yaml:"method"`
	Budget        float64  `json:"budget" yaml:"budget"`
	TermYears     int      `json:"termYears" yaml:"termYears"`
	Months        int      `json:"months" yaml:"months"`
	MaxPayment    float64  `json:"maxPayment" yaml:"maxPayment"`
	TotalCost     float64  `json:"totalCost" yaml:"totalCost"`
	TotalInterest float64  `json:"totalInterest" yaml:"totalInterest"`
	Iterations    int      `json:"iterations" yaml:"iterations"`
	Feasible      bool     `json:"feasible" yaml:"feasible"`
	Notes         []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}
