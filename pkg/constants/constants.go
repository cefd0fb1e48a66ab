// Package constants provides shared constants for the mortgage-simulator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencySymbol is appended to formatted amounts
	CurrencySymbol = "€"
)

// Practical term range; the engine accepts any positive term.
const (
	// MinTermYears is the shortest practical mortgage term
	MinTermYears = 6

	// MaxTermYears is the longest practical mortgage term
	MaxTermYears = 40

	// MaxComputableTermYears bounds the schedule length the engine will allocate
	MaxComputableTermYears = 1000
)

// Default inputs used when a scenario is built from the command line.
const (
	DefaultPrincipal    = 60000.0
	DefaultInterestRate = 2.3 // percent
	DefaultTermYears    = 20
)

// Chart constants
const (
	// ChartScaleStep is the granularity the shared y-axis ceiling is rounded up to
	ChartScaleStep = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON emits the simulations as JSON
	OutputFormatJSON = "json"

	// OutputFormatYAML emits the simulations as YAML
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix namespaces environment overrides, e.g. MORTGAGE_LOGGING_LEVEL
	EnvPrefix = "MORTGAGE"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// MaxReasonableRate is the percentage above which a rate triggers a warning
	MaxReasonableRate = 25.0

	// MinReasonableRate is the positive percentage below which a rate was probably given as a fraction
	MinReasonableRate = 0.1
)
