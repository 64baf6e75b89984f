package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	missing string
}

func (s *ConfigTestSuite) SetupTest() {
	s.missing = filepath.Join(s.T().TempDir(), "missing.env")

	s.T().Setenv("DISCORD_TOKEN", "token")
	s.T().Setenv("GUILD_ID", "guild-1")
	s.T().Setenv("NEW_MEMBER_ROLE_ID", "role-new")
	s.T().Setenv("ACTIVE_MEMBER_ROLE_ID", "role-active")
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load(s.missing)
	s.Require().NoError(err)

	s.Equal("token", cfg.Discord.Token)
	s.Equal("guild-1", cfg.Discord.GuildID)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(0, cfg.Redis.DB)

	s.Equal(24*time.Hour, cfg.Lifecycle.Probation)
	s.Equal(2*time.Hour, cfg.Lifecycle.EliminationCooldown)
	s.Equal(int64(5), cfg.Lifecycle.MessageThreshold)
	s.Equal(int64(30), cfg.Lifecycle.InactivityDays)
	s.Equal("hit-confirmed", cfg.Lifecycle.HitChannel)
	s.Equal("✅", cfg.Lifecycle.HitEmoji)

	s.Equal("pledge-and-surety", cfg.Contracts.ProofChannel)
	s.Equal(1000, cfg.Contracts.HistoryLimit)

	s.Equal(time.Minute, cfg.Schedule.StateTick)
	s.Equal(30*time.Minute, cfg.Schedule.ContractCycle)
	s.Equal(15*time.Minute, cfg.Schedule.Reconcile)
	s.Equal(24*time.Hour, cfg.Schedule.InactivitySweep)

	level, err := cfg.Level()
	s.Require().NoError(err)
	s.Equal(slog.LevelInfo, level)
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("NEW_MEMBER_PROBATION", "90m")
	s.T().Setenv("ELIMINATION_COOLDOWN", "4h")
	s.T().Setenv("ELIMINATED_ROLE_ID", "role-eliminated")
	s.T().Setenv("REDIS_DB", "3")
	s.T().Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(s.missing)
	s.Require().NoError(err)
	s.Equal(90*time.Minute, cfg.Lifecycle.Probation)
	s.Equal(4*time.Hour, cfg.Lifecycle.EliminationCooldown)
	s.Equal("role-eliminated", cfg.EliminatedBadge())
	s.Equal(3, cfg.Redis.DB)

	level, err := cfg.Level()
	s.Require().NoError(err)
	s.Equal(slog.LevelDebug, level)
}

func (s *ConfigTestSuite) TestEliminatedBadgeFallsBackToActive() {
	cfg, err := Load(s.missing)
	s.Require().NoError(err)
	s.Equal("role-active", cfg.EliminatedBadge())
}

func (s *ConfigTestSuite) TestRequiredVariables() {
	s.T().Setenv("DISCORD_TOKEN", "")
	os.Unsetenv("DISCORD_TOKEN")

	_, err := Load(s.missing)
	s.Error(err)
	s.Contains(err.Error(), "DISCORD_TOKEN")
}

func (s *ConfigTestSuite) TestRejectsNonPositiveSettings() {
	s.T().Setenv("MESSAGE_THRESHOLD", "0")
	s.T().Setenv("CONTRACT_CYCLE_INTERVAL", "-1m")

	_, err := Load(s.missing)
	s.Error(err)
	s.Contains(err.Error(), "MESSAGE_THRESHOLD")
	s.Contains(err.Error(), "CONTRACT_CYCLE_INTERVAL")
}

func (s *ConfigTestSuite) TestRejectsUnknownLogLevel() {
	s.T().Setenv("LOG_LEVEL", "chatty")

	_, err := Load(s.missing)
	s.Error(err)
	s.Contains(err.Error(), "LOG_LEVEL")
}

func (s *ConfigTestSuite) TestDotenvFile() {
	path := filepath.Join(s.T().TempDir(), "bot.env")
	s.Require().NoError(os.WriteFile(path, []byte("PROOF_CHANNEL=pledges\nHIT_EMOJI=🎯\nGUILD_ID=from-file\n"), 0o600))
	s.T().Cleanup(func() {
		os.Unsetenv("PROOF_CHANNEL")
		os.Unsetenv("HIT_EMOJI")
	})

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("pledges", cfg.Contracts.ProofChannel)
	s.Equal("🎯", cfg.Lifecycle.HitEmoji)
	// the environment wins over the file
	s.Equal("guild-1", cfg.Discord.GuildID)
}
