package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iwvelando/mortgage-simulator/internal/config"
	"github.com/iwvelando/mortgage-simulator/internal/optimizer"
	"github.com/iwvelando/mortgage-simulator/internal/simulation"
	"github.com/iwvelando/mortgage-simulator/pkg/constants"
	"github.com/iwvelando/mortgage-simulator/pkg/output"
	"github.com/iwvelando/mortgage-simulator/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loanFlags are the command line values describing an ad-hoc scenario.
type loanFlags struct {
	principal float64
	rate      float64
	years     int
	budget    float64
	set       map[string]bool
}

// scenario returns the ad-hoc scenario, or nil when no loan flag was given.
// Unset loan flags fall back to the built-in defaults.
func (f loanFlags) scenario() *config.Scenario {
	if !f.set["principal"] && !f.set["rate"] && !f.set["years"] && !f.set["budget"] {
		return nil
	}
	s := config.Default().Scenarios[0]
	s.Name = "command line"
	s.MonthlyBudget = f.budget
	if f.set["principal"] {
		s.Principal = f.principal
	}
	if f.set["rate"] {
		s.InterestRate = f.rate
	}
	if f.set["years"] {
		s.TermYears = f.years
	}
	return &s
}

// loadConfiguration reads the config file. When an ad-hoc scenario is given
// it replaces the configured scenarios and a missing file is not an error;
// environment overrides still apply.
func loadConfiguration(path string, adhoc *config.Scenario) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err != nil {
		if adhoc == nil || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if conf, err = config.LoadEnvironment(); err != nil {
			return nil, err
		}
	}
	if adhoc != nil {
		conf.Scenarios = []config.Scenario{*adhoc}
	}
	return conf, nil
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	// Logs go to stderr so they never interleave with results on stdout.
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// A missing .env file is fine; variables may come from the environment.
	_ = godotenv.Load()

	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json, yaml")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")

	var loan loanFlags
	flag.Float64Var(&loan.principal, "principal", constants.DefaultPrincipal, "loan principal; any loan flag replaces the configured scenarios")
	flag.Float64Var(&loan.rate, "rate", constants.DefaultInterestRate, "annual interest rate in percent")
	flag.IntVar(&loan.years, "years", constants.DefaultTermYears, "term in years")
	flag.Float64Var(&loan.budget, "budget", 0, "monthly budget used to recommend a term")
	flag.Parse()

	loan.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { loan.set[f.Name] = true })

	conf, err := loadConfiguration(*configLocation, loan.scenario())
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results, err := simulation.GetSimulations(context.Background(), logger, *conf)
	if err != nil {
		logger.Fatal("failed to compute simulations",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	runner, err := optimizer.NewRunner(logger, conf)
	if err != nil {
		logger.Fatal("failed to initialize optimizer",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	recommendations, err := runner.Run()
	if err != nil {
		logger.Fatal("optimizer execution failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	if !recommendations.Empty() {
		recommendations.Apply(results)
	}

	logger.Debug("simulations computed",
		zap.String("op", "main"),
		zap.Int("scenarios", len(results)),
		zap.String("format", outputFormat),
	)

	if err := output.Write(os.Stdout, outputFormat, results); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
