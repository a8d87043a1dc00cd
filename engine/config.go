package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
)

// Config holds the search knobs. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	UseAspiration      bool  `json:"use_aspiration"`
	AspirationWindow   int32 `json:"aspiration_window"`
	AspirationCap      int32 `json:"aspiration_cap"`
	AspirationMinDepth int   `json:"aspiration_min_depth"`

	UseFutility   bool `json:"use_futility"`
	FutilityDepth int  `json:"futility_depth"`

	UseLMR      bool `json:"use_lmr"`
	LMRMinDepth int  `json:"lmr_min_depth"`
	LMRMinRank  int  `json:"lmr_min_rank"`

	UseKillers bool `json:"use_killers"`
	UseHistory bool `json:"use_history"`

	BaseBudgetMs   int `json:"base_budget_ms"`
	DepthBudgetMs  int `json:"depth_budget_ms"`
	BudgetMinDepth int `json:"budget_min_depth"`

	TTCapacity   int     `json:"tt_capacity"`
	TTHighWater  float64 `json:"tt_high_water"`
	TTTrimTarget float64 `json:"tt_trim_target"`

	Workers int `json:"workers"`
}

func DefaultConfig() Config {
	return Config{
		UseAspiration:      true,
		AspirationWindow:   50,
		AspirationCap:      800,
		AspirationMinDepth: 3,

		UseFutility:   true,
		FutilityDepth: 3,

		UseLMR:      true,
		LMRMinDepth: 3,
		LMRMinRank:  3,

		UseKillers: true,
		UseHistory: true,

		BaseBudgetMs:   1000,
		DepthBudgetMs:  500,
		BudgetMinDepth: 3,

		TTCapacity:   DefaultTTCapacity,
		TTHighWater:  0.9,
		TTTrimTarget: 0.7,

		Workers: runtime.NumCPU(),
	}
}

// LoadConfig reads a JSON file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the search cannot run with.
func (c Config) Validate() error {
	switch {
	case c.AspirationWindow <= 0:
		return errors.New("aspiration_window must be positive")
	case c.AspirationCap < c.AspirationWindow:
		return errors.New("aspiration_cap must be at least aspiration_window")
	case c.FutilityDepth >= len(FutilityMargins):
		return fmt.Errorf("futility_depth must be below %d", len(FutilityMargins))
	case c.TTCapacity <= 0:
		return errors.New("tt_capacity must be positive")
	case c.TTTrimTarget <= 0 || c.TTHighWater <= c.TTTrimTarget:
		return errors.New("tt_trim_target must be positive and below tt_high_water")
	case c.Workers <= 0:
		return errors.New("workers must be positive")
	}
	return nil
}

// NewTable returns a transposition table sized and tuned for c.
func (c Config) NewTable() *TransTable {
	tt := NewTransTable(c.TTCapacity)
	tt.SetTrimThresholds(c.TTHighWater, c.TTTrimTarget)
	return tt
}
