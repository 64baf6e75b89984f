package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/surety/internal/common/clock"
	"github.com/KirkDiggler/surety/internal/common/uuid"
	"github.com/KirkDiggler/surety/internal/config"
	"github.com/KirkDiggler/surety/internal/handlers/discord"
	"github.com/KirkDiggler/surety/internal/random"
	"github.com/KirkDiggler/surety/internal/repositories/activity"
	"github.com/KirkDiggler/surety/internal/repositories/contract_ledger"
	"github.com/KirkDiggler/surety/internal/scheduler"
	contractService "github.com/KirkDiggler/surety/internal/services/contract"
	"github.com/KirkDiggler/surety/internal/services/messaging"
	rolesService "github.com/KirkDiggler/surety/internal/services/roles"
	"github.com/KirkDiggler/surety/internal/statemachine"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("bot exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Initialize repositories
	activityRepo, err := activity.NewRedis(&activity.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create activity repository: %w", err)
	}

	ledgerRepo, err := contract_ledger.NewRedis(&contract_ledger.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create contract ledger repository: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Roller: random.New(&random.Config{}),
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	session, err := discord.NewSession(cfg.Discord.Token)
	if err != nil {
		return err
	}

	guild, err := discord.NewGuild(&discord.GuildConfig{
		Session:         session,
		GuildID:         cfg.Discord.GuildID,
		Messaging:       messagingSvc,
		AnnounceChannel: cfg.Discord.AnnounceChannel,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create guild adapter: %w", err)
	}

	systemClock := clock.New()

	registry, err := statemachine.Configure(&statemachine.Settings{
		DefaultBadge:        cfg.Discord.GuildID,
		NewMemberBadge:      cfg.Badges.NewMember,
		ActiveMemberBadge:   cfg.Badges.ActiveMember,
		EliminatedBadge:     cfg.EliminatedBadge(),
		MessageThreshold:    cfg.Lifecycle.MessageThreshold,
		Probation:           cfg.Lifecycle.Probation,
		EliminationCooldown: cfg.Lifecycle.EliminationCooldown,
		InactivityDays:      cfg.Lifecycle.InactivityDays,
		ProofChannel:        cfg.Contracts.ProofChannel,
		HitChannel:          cfg.Lifecycle.HitChannel,
		HitEmoji:            cfg.Lifecycle.HitEmoji,
		Guild:               guild,
		Clock:               systemClock,
		Logger:              logger,
	})
	if err != nil {
		return fmt.Errorf("failed to configure states: %w", err)
	}

	manager, err := statemachine.New(&statemachine.Config{
		Registry: registry,
		Guild:    guild,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create state manager: %w", err)
	}

	roleSvc, err := rolesService.NewService(&rolesService.Config{
		Manager:      manager,
		ActivityRepo: activityRepo,
		Clock:        systemClock,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create role service: %w", err)
	}

	contractSvc, err := contractService.NewService(&contractService.Config{
		Guild:         guild,
		States:        manager,
		Ledger:        ledgerRepo,
		Roller:        random.New(&random.Config{Seed: cfg.Contracts.Seed}),
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
		ProofChannel:  cfg.Contracts.ProofChannel,
		HistoryLimit:  cfg.Contracts.HistoryLimit,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create contract service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.Discord.ApplicationID,
		GuildID:          cfg.Discord.GuildID,
		RoleService:      roleSvc,
		ContractService:  contractSvc,
		MessagingService: messagingSvc,
		Lookup:           guild,
		Announcer:        guild,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	jobs, err := scheduler.New(&scheduler.Config{
		Jobs:   buildJobs(cfg, roleSvc, contractSvc, logger),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			logger.Error("error stopping bot", "error", err)
		}
		logger.Info("bot has been shut down")
	}()

	// Blocks until SIGINT or SIGTERM
	if err := jobs.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func buildJobs(cfg *config.Config, roleSvc rolesService.Service, contractSvc contractService.Service, logger *slog.Logger) []*scheduler.Job {
	return []*scheduler.Job{
		{
			Name:     "state-tick",
			Interval: cfg.Schedule.StateTick,
			Run: func(ctx context.Context) error {
				output, err := roleSvc.CheckElapsed(ctx)
				if err != nil {
					return err
				}
				if output.Transitioned > 0 || output.Failed > 0 {
					logger.Info("elapsed tick", "checked", output.Checked, "transitioned", output.Transitioned, "failed", output.Failed)
				}
				return nil
			},
		},
		{
			Name:     "contract-cycle",
			Interval: cfg.Schedule.ContractCycle,
			Run: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, cfg.Schedule.ContractCycle)
				defer cancel()

				output, err := contractSvc.DistributeContracts(ctx, &contractService.DistributeContractsInput{})
				if err != nil {
					return err
				}
				if output.Skipped {
					logger.Info("contract cycle skipped", "new", output.NewCohort, "active", output.ActiveCohort)
					return nil
				}
				logger.Info("contract cycle complete",
					"cycle", output.Cycle.ID,
					"contracts", len(output.Cycle.Contracts),
					"delivered", output.Delivered,
					"undelivered", output.Undelivered)
				return nil
			},
		},
		{
			Name:       "reconcile-badges",
			Interval:   cfg.Schedule.Reconcile,
			RunOnStart: true,
			Run: func(ctx context.Context) error {
				output, err := roleSvc.ReconcileBadges(ctx)
				if err != nil {
					return err
				}
				logger.Info("badges reconciled", "checked", output.Checked, "granted", output.Granted, "revoked", output.Revoked, "removed", output.Removed, "failed", output.Failed)
				return nil
			},
		},
		{
			Name:     "inactivity-sweep",
			Interval: cfg.Schedule.InactivitySweep,
			Run: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, time.Minute)
				defer cancel()

				output, err := roleSvc.CheckInactivity(ctx)
				if err != nil {
					return err
				}
				logger.Info("inactivity sweep", "checked", output.Checked, "demoted", output.Demoted, "failed", output.Failed)
				return nil
			},
		},
	}
}
