package cmd

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the optional TOML configuration file, looked up as
// .fintrack.toml in the working directory. Flags and environment variables
// take precedence over it.
type fileConfig struct {
	LedgerFile      string `toml:"ledger_file"`
	BudgetFile      string `toml:"budget_file"`
	GoalsFile       string `toml:"goals_file"`
	InvestmentsFile string `toml:"investments_file"`
	Currency        string `toml:"currency"`
}

const configFileName = ".fintrack.toml"

var loadedConfig fileConfig

// LoadConfig reads the optional configuration file. A missing file is not an
// error. Called by main before executing a command.
func LoadConfig() {
	data, err := os.ReadFile(configFileName)
	if err != nil {
		return
	}
	if err := toml.Unmarshal(data, &loadedConfig); err != nil {
		logger.Warn().Err(err).Str("path", configFileName).Msg("ignoring unreadable config file")
		loadedConfig = fileConfig{}
		return
	}
	logger.Debug().Str("path", configFileName).Msg("config file loaded")
}

// resolve returns the first non-empty value: flag, environment variable,
// config file, builtin default.
func resolve(flagValue, envKey, configValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" {
		return configValue
	}
	return fallback
}

func resolveLedgerFile() string {
	return resolve(*ledgerFile, "FINTRACK_LEDGER_FILE", loadedConfig.LedgerFile, filepath.Join(".", "ledger.jsonl"))
}

func resolveBudgetFile() string {
	return resolve(*budgetFile, "FINTRACK_BUDGET_FILE", loadedConfig.BudgetFile, filepath.Join(".", "budgets.json"))
}

func resolveGoalsFile() string {
	return resolve(*goalsFile, "FINTRACK_GOALS_FILE", loadedConfig.GoalsFile, filepath.Join(".", "goals.json"))
}

func resolveInvestmentsFile() string {
	return resolve(*investmentsFile, "FINTRACK_INVESTMENTS_FILE", loadedConfig.InvestmentsFile, filepath.Join(".", "investments.json"))
}

func defaultCurrency() string {
	return resolve(*currencyFlag, "FINTRACK_CURRENCY", loadedConfig.Currency, "USD")
}
