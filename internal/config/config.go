package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilPointer is returned when Load is called with a nil target.
var ErrNilPointer = errors.New("config target cannot be nil")

var dotenvOnce sync.Once

// Load parses environment variables into the given configuration struct
// based on its `env` field tags. A .env file, if present, is loaded once per
// process before the first parse; a missing file is not an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// Runtime holds the settings the synapse binary wires into the dispatch
// core. Tier values follow the conventional scheme; overriding HighTier
// moves the threshold ExecuteHighest and ExecuteHigh drain to.
type Runtime struct {
	// HighTier is the priority at or above which work drains as a group.
	HighTier int `env:"SYNAPSE_HIGH_TIER" envDefault:"100"`

	// ChannelPriority is the priority channel deliveries are posted at.
	ChannelPriority int `env:"SYNAPSE_CHANNEL_PRIORITY" envDefault:"50"`

	// ScriptPath is an optional Lua source the binary loads on startup.
	ScriptPath string `env:"SYNAPSE_SCRIPT"`
}
