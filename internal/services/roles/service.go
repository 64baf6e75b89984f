package roles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/surety/internal/common/clock"
	"github.com/KirkDiggler/surety/internal/models"
	activityRepo "github.com/KirkDiggler/surety/internal/repositories/activity"
	"github.com/KirkDiggler/surety/internal/statemachine"
)

// Config holds configuration for the role service
type Config struct {
	// Manager owns member states
	Manager statemachine.Manager

	// ActivityRepo tracks message counts and last activity
	ActivityRepo activityRepo.Repository

	Clock clock.Clock

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// service implements the Service interface
type service struct {
	manager      statemachine.Manager
	activityRepo activityRepo.Repository
	clock        clock.Clock
	logger       *slog.Logger
}

// NewService creates a new role service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Manager == nil {
		return nil, ErrNilManager
	}
	if cfg.ActivityRepo == nil {
		return nil, ErrNilActivityRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		manager:      cfg.Manager,
		activityRepo: cfg.ActivityRepo,
		clock:        cfg.Clock,
		logger:       logger,
	}, nil
}

// HandleMemberJoin places a new guild member in the default state
func (s *service) HandleMemberJoin(ctx context.Context, input *HandleMemberJoinInput) (*TransitionOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrEmptyMemberID
	}

	return s.process(ctx, statemachine.NewEvent(statemachine.EventMemberJoin, input.MemberID, nil))
}

// HandleMemberLeave drops the member's state so periodic checks stop visiting them
func (s *service) HandleMemberLeave(ctx context.Context, input *HandleMemberLeaveInput) (*HandleMemberLeaveOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrEmptyMemberID
	}

	return &HandleMemberLeaveOutput{
		MemberID: input.MemberID,
		Removed:  s.manager.Remove(input.MemberID),
	}, nil
}

// HandleMessage records the message and feeds the author's state a Message event
func (s *service) HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrEmptyMemberID
	}
	if input.IsBot {
		return &HandleMessageOutput{Ignored: true}, nil
	}

	postedAt := input.PostedAt
	if postedAt.IsZero() {
		postedAt = s.clock.Now()
	}

	data := map[string]any{
		statemachine.KeyChannelName:    input.ChannelName,
		statemachine.KeyHasAttachments: input.HasAttachments,
	}

	var count int64
	activity, err := s.activityRepo.RecordMessage(ctx, &activityRepo.RecordMessageInput{
		MemberID: input.MemberID,
		PostedAt: postedAt,
	})
	if err != nil {
		// Proof posts still count without a message total
		s.logger.Warn("failed to record message", "member", input.MemberID, "error", err)
	} else {
		count = activity.MessageCount
		data[statemachine.KeyMessageCount] = count
	}

	transition, err := s.process(ctx, statemachine.NewEvent(statemachine.EventMessage, input.MemberID, data))
	if err != nil {
		return nil, err
	}

	return &HandleMessageOutput{
		TransitionOutput: *transition,
		MessageCount:     count,
	}, nil
}

// HandleReaction feeds the reacting member's state a ReactionAdd event
func (s *service) HandleReaction(ctx context.Context, input *HandleReactionInput) (*TransitionOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrEmptyMemberID
	}
	if input.IsBot {
		return &TransitionOutput{MemberID: input.MemberID}, nil
	}

	mentions := make([]string, len(input.Mentions))
	copy(mentions, input.Mentions)

	return s.process(ctx, statemachine.NewEvent(statemachine.EventReactionAdd, input.MemberID, map[string]any{
		statemachine.KeyEmoji:          input.Emoji,
		statemachine.KeyChannelName:    input.ChannelName,
		statemachine.KeyHasAttachments: input.HasAttachments,
		statemachine.KeyMentions:       mentions,
	}))
}

// SetMemberState parses the requested state and forces the member into it
func (s *service) SetMemberState(ctx context.Context, input *SetMemberStateInput) (*TransitionOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrEmptyMemberID
	}

	target, err := models.ParsePlayerState(input.StateName)
	if err != nil || !s.manager.Registry().Has(target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, input.StateName)
	}

	previous, _ := s.manager.CurrentState(input.MemberID)
	if err := s.manager.Override(ctx, input.MemberID, target); err != nil {
		return nil, fmt.Errorf("failed to set state: %w", err)
	}
	current, _ := s.manager.CurrentState(input.MemberID)

	s.logger.Info("state overridden", "member", input.MemberID, "from", previous.String(), "to", current.String())

	return &TransitionOutput{
		MemberID: input.MemberID,
		Previous: previous,
		Current:  current,
	}, nil
}

// GetMemberState returns the member's state along with what the bot tracks about them
func (s *service) GetMemberState(ctx context.Context, input *GetMemberStateInput) (*GetMemberStateOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrEmptyMemberID
	}

	output := &GetMemberStateOutput{}
	output.State, output.Resolved = s.manager.CurrentState(input.MemberID)

	if output.Resolved {
		if state, ok := s.manager.Registry().Get(output.State); ok {
			if timed, ok := state.(interface {
				EnteredAt(memberID string) (time.Time, bool)
			}); ok {
				output.EnteredAt, _ = timed.EnteredAt(input.MemberID)
			}
		}
	}

	activity, err := s.activityRepo.GetActivity(ctx, &activityRepo.GetActivityInput{MemberID: input.MemberID})
	switch {
	case err == nil:
		output.Activity = activity
	case errors.Is(err, activityRepo.ErrActivityNotFound):
	default:
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return output, nil
}

// ListStates describes the configured states in registration order
func (s *service) ListStates(ctx context.Context) (*ListStatesOutput, error) {
	registry := s.manager.Registry()
	defaultState := registry.DefaultState()

	output := &ListStatesOutput{}
	for _, state := range registry.States() {
		summary := &StateSummary{
			Name:      state.Name(),
			Badges:    state.Badges(),
			IsDefault: state.Name() == defaultState,
		}

		transitions := state.Transitions()
		for _, eventType := range statemachine.EventTypes() {
			for _, rule := range transitions[eventType] {
				summary.Rules = append(summary.Rules, RuleSummary{
					Event:       eventType.String(),
					Description: rule.Describe(),
				})
			}
		}

		output.States = append(output.States, summary)
	}

	return output, nil
}

// CheckElapsed runs the elapsed-time tick over every recorded member
func (s *service) CheckElapsed(ctx context.Context) (*CheckElapsedOutput, error) {
	result := s.manager.TickElapsed(ctx)
	if result.Transitioned > 0 || result.Failed > 0 {
		s.logger.Info("elapsed check complete",
			"checked", result.Checked, "transitioned", result.Transitioned, "failed", result.Failed)
	}

	return &CheckElapsedOutput{
		Checked:      result.Checked,
		Transitioned: result.Transitioned,
		Failed:       result.Failed,
	}, ctx.Err()
}

// CheckInactivity sends an Inactivity event to every recorded member with
// tracked activity. Members demoted to new member start counting messages again.
func (s *service) CheckInactivity(ctx context.Context) (*CheckInactivityOutput, error) {
	listed, err := s.activityRepo.ListActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	now := s.clock.Now()
	snapshot := s.manager.Snapshot()
	output := &CheckInactivityOutput{}

	sort.Slice(listed.Activities, func(i, j int) bool {
		return listed.Activities[i].MemberID < listed.Activities[j].MemberID
	})

	for _, activity := range listed.Activities {
		if ctx.Err() != nil {
			return output, ctx.Err()
		}

		before, ok := snapshot[activity.MemberID]
		if !ok {
			continue
		}
		days := activity.DaysSinceLastMessage(now)
		if days < 0 {
			continue
		}
		output.Checked++

		event := statemachine.NewEvent(statemachine.EventInactivity, activity.MemberID, map[string]any{
			statemachine.KeyDaysSinceLastMessage: days,
		})
		if err := s.manager.ProcessEvent(ctx, event); err != nil {
			output.Failed++
			s.logger.Warn("inactivity check failed", "member", activity.MemberID, "error", err)
			continue
		}

		after, _ := s.manager.CurrentState(activity.MemberID)
		if after == before || after != models.PlayerStateNewMember {
			continue
		}
		output.Demoted++

		err := s.activityRepo.ResetMessageCount(ctx, &activityRepo.ResetMessageCountInput{MemberID: activity.MemberID})
		if err != nil {
			s.logger.Warn("failed to reset message count", "member", activity.MemberID, "error", err)
		}
	}

	if output.Demoted > 0 {
		s.logger.Info("inactivity check complete", "checked", output.Checked, "demoted", output.Demoted)
	}

	return output, nil
}

// ReconcileBadges re-asserts every recorded member's badges
func (s *service) ReconcileBadges(ctx context.Context) (*ReconcileBadgesOutput, error) {
	result := s.manager.Reconcile(ctx)
	if result.Granted > 0 || result.Revoked > 0 || result.Removed > 0 || result.Failed > 0 {
		s.logger.Info("badge reconciliation complete",
			"checked", result.Checked, "granted", result.Granted, "revoked", result.Revoked,
			"removed", result.Removed, "failed", result.Failed)
	}

	return &ReconcileBadgesOutput{
		Checked: result.Checked,
		Granted: result.Granted,
		Revoked: result.Revoked,
		Removed: result.Removed,
		Failed:  result.Failed,
	}, ctx.Err()
}

func (s *service) process(ctx context.Context, event *statemachine.Event) (*TransitionOutput, error) {
	previous, _ := s.manager.CurrentState(event.Member)

	if err := s.manager.ProcessEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to process %s event: %w", event.Type.String(), err)
	}

	current, _ := s.manager.CurrentState(event.Member)
	return &TransitionOutput{
		MemberID: event.Member,
		Previous: previous,
		Current:  current,
	}, nil
}
