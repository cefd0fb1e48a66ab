package amortization

// Row holds the values for a single monthly installment.
type Row struct {
	Month            int     `json:"month" yaml:"month"`
	Payment          float64 `json:"payment" yaml:"payment"`
	Interest         float64 `json:"interest" yaml:"interest"`
	PrincipalPaid    float64 `json:"principalPaid" yaml:"principalPaid"`
	RemainingBalance float64 `json:"remainingBalance" yaml:"remainingBalance"`
}

// Schedule is the ordered list of installments for one method.
type Schedule struct {
	Method        Method  `json:"method" yaml:"method"`
	Rows          []Row   `json:"rows" yaml:"rows"`
	TotalCost     float64 `json:"totalCost" yaml:"totalCost"`
	TotalInterest float64 `json:"totalInterest" yaml:"totalInterest"`
}

// Months returns the number of installments.
func (s Schedule) Months() int {
	return len(s.Rows)
}

// FirstPayment returns the payment due in month one, or zero for an empty schedule.
func (s Schedule) FirstPayment() float64 {
	if len(s.Rows) == 0 {
		return 0
	}
	return s.Rows[0].Payment
}

// MaxPayment returns the highest monthly payment in the schedule.
func (s Schedule) MaxPayment() float64 {
	maxPayment := 0.0
	for _, row := range s.Rows {
		if row.Payment > maxPayment {
			maxPayment = row.Payment
		}
	}
	return maxPayment
}

// FinalBalance returns the balance left after the last installment. Floating
// point residue is kept as computed.
func (s Schedule) FinalBalance() float64 {
	if len(s.Rows) == 0 {
		return 0
	}
	return s.Rows[len(s.Rows)-1].RemainingBalance
}

// Result pairs the two schedules computed from the same input.
type Result struct {
	Input   Input    `json:"input" yaml:"input"`
	Annuity Schedule `json:"annuity" yaml:"annuity"`
	Linear  Schedule `json:"linear" yaml:"linear"`
}

// Schedule returns the schedule for the given method.
func (r Result) Schedule(method Method) (Schedule, bool) {
	switch method {
	case Annuity:
		return r.Annuity, true
	case Linear:
		return r.Linear, true
	default:
		return Schedule{}, false
	}
}

// Schedules returns both schedules in display order.
func (r Result) Schedules() []Schedule {
	return []Schedule{r.Annuity, r.Linear}
}
