package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	envPrefix     = "LEDGER_"
	envConfigFile = envPrefix + "CONFIG_FILE"
)

// DefaultExpenseCategories seed a fresh categories file.
var DefaultExpenseCategories = []string{
	"Living Expenses",
	"Food and Dining",
	"Personal & Lifestyle",
	"Healthcare & Insurance",
	"Family & Education",
	"Miscellaneous",
}

// DefaultIncomeCategories seed a fresh categories file.
var DefaultIncomeCategories = []string{
	"Earned Income",
	"Unearned Income",
}

type Config struct {
	TransactionsPath  string   `koanf:"transactions_path"`
	CategoriesPath    string   `koanf:"categories_path"`
	DisallowFuture    bool     `koanf:"disallow_future"`
	EnforceCategories bool     `koanf:"enforce_categories"`
	ExpenseCategories []string `koanf:"expense_categories"`
	IncomeCategories  []string `koanf:"income_categories"`
	LogLevel          string   `koanf:"log_level"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"transactions_path":  "transactions.csv",
		"categories_path":    "categories.csv",
		"disallow_future":    true,
		"enforce_categories": true,
		"expense_categories": DefaultExpenseCategories,
		"income_categories":  DefaultIncomeCategories,
		"log_level":          "info",
	}
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "loading config defaults")
	}

	if path := os.Getenv(envConfigFile); len(path) != 0 {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "loading config file %s", path)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "loading config environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	cfg.ExpenseCategories = splitList(cfg.ExpenseCategories)
	cfg.IncomeCategories = splitList(cfg.IncomeCategories)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that would make the ledger unusable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TransactionsPath) == "" {
		return errors.New("transactions_path must not be empty")
	}
	if strings.TrimSpace(c.CategoriesPath) == "" {
		return errors.New("categories_path must not be empty")
	}
	if filepath.Clean(c.TransactionsPath) == filepath.Clean(c.CategoriesPath) {
		return errors.Errorf("transactions_path and categories_path both point at %s", c.TransactionsPath)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// splitList trims entries, expands comma-joined values from the environment
// and drops blanks.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
