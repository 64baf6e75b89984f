// Package config loads the bot's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is every setting the bot reads at startup
type Config struct {
	Discord   Discord
	Redis     Redis
	Badges    Badges
	Lifecycle Lifecycle
	Contracts Contracts
	Schedule  Schedule

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Discord holds the gateway credentials
type Discord struct {
	Token         string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID,required"`

	// AnnounceChannel receives state change announcements, empty disables them
	AnnounceChannel string `env:"ANNOUNCE_CHANNEL"`
}

// Redis holds the connection settings
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Badges maps lifecycle states to guild role IDs. The default badge is the
// guild's everyone role, whose ID equals the guild ID.
type Badges struct {
	NewMember    string `env:"NEW_MEMBER_ROLE_ID,required"`
	ActiveMember string `env:"ACTIVE_MEMBER_ROLE_ID,required"`

	// Eliminated falls back to ActiveMember when empty
	Eliminated string `env:"ELIMINATED_ROLE_ID"`
}

// Lifecycle holds the state machine thresholds
type Lifecycle struct {
	Probation           time.Duration `env:"NEW_MEMBER_PROBATION" envDefault:"24h"`
	EliminationCooldown time.Duration `env:"ELIMINATION_COOLDOWN" envDefault:"2h"`
	MessageThreshold    int64         `env:"MESSAGE_THRESHOLD" envDefault:"5"`
	InactivityDays      int64         `env:"INACTIVITY_DAYS" envDefault:"30"`
	HitChannel          string        `env:"HIT_CHANNEL" envDefault:"hit-confirmed"`
	HitEmoji            string        `env:"HIT_EMOJI" envDefault:"✅"`
}

// Contracts holds the broker settings
type Contracts struct {
	ProofChannel string `env:"PROOF_CHANNEL" envDefault:"pledge-and-surety"`
	HistoryLimit int    `env:"PROOF_HISTORY_LIMIT" envDefault:"1000"`

	// Seed makes target draws reproducible, zero seeds from the clock
	Seed int64 `env:"CONTRACT_SEED"`
}

// Schedule holds the periodic job intervals
type Schedule struct {
	StateTick       time.Duration `env:"STATE_TICK_INTERVAL" envDefault:"1m"`
	ContractCycle   time.Duration `env:"CONTRACT_CYCLE_INTERVAL" envDefault:"30m"`
	Reconcile       time.Duration `env:"RECONCILE_INTERVAL" envDefault:"15m"`
	InactivitySweep time.Duration `env:"INACTIVITY_SWEEP_INTERVAL" envDefault:"24h"`
}

// Load reads the optional dotenv files, then parses the environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings env tags cannot express
func (c *Config) Validate() error {
	var errs []error

	if c.Lifecycle.Probation <= 0 {
		errs = append(errs, errors.New("NEW_MEMBER_PROBATION must be positive"))
	}
	if c.Lifecycle.EliminationCooldown <= 0 {
		errs = append(errs, errors.New("ELIMINATION_COOLDOWN must be positive"))
	}
	if c.Lifecycle.MessageThreshold <= 0 {
		errs = append(errs, errors.New("MESSAGE_THRESHOLD must be positive"))
	}
	if c.Lifecycle.InactivityDays <= 0 {
		errs = append(errs, errors.New("INACTIVITY_DAYS must be positive"))
	}
	if c.Contracts.HistoryLimit <= 0 {
		errs = append(errs, errors.New("PROOF_HISTORY_LIMIT must be positive"))
	}
	for name, interval := range map[string]time.Duration{
		"STATE_TICK_INTERVAL":       c.Schedule.StateTick,
		"CONTRACT_CYCLE_INTERVAL":   c.Schedule.ContractCycle,
		"RECONCILE_INTERVAL":        c.Schedule.Reconcile,
		"INACTIVITY_SWEEP_INTERVAL": c.Schedule.InactivitySweep,
	} {
		if interval <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// EliminatedBadge returns the eliminated role, falling back to the active role
func (c *Config) EliminatedBadge() string {
	if c.Badges.Eliminated == "" {
		return c.Badges.ActiveMember
	}
	return c.Badges.Eliminated
}

// Level parses LOG_LEVEL
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return level, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
