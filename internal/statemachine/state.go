package statemachine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/surety/internal/common/clock"
	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/platform"
)

// RoleState is one lifecycle state: its badges, its transition rules and
// what happens to a member entering or leaving it.
type RoleState interface {
	// Name identifies the state
	Name() models.PlayerState

	// Badges returns the state's badges; index 0 is the default badge
	Badges() []string

	// AddTransition appends rule to the rules evaluated for eventType
	AddTransition(eventType EventType, rule Rule) error

	// Transitions returns a copy of the registered rules
	Transitions() map[EventType][]Rule

	// Handle returns the state the member should move to, if any
	Handle(event *Event) (models.PlayerState, bool)

	// Enter grants the state's badges the member does not hold yet
	Enter(ctx context.Context, memberID string)

	// Exit revokes the state's badges except the default badge
	Exit(ctx context.Context, memberID string)

	// Context returns data a periodic check needs for this member
	Context(memberID string) map[string]any

	// Forget drops any per-member bookkeeping without touching badges
	Forget(memberID string)
}

// StateConfig holds what a state needs to mutate badges
type StateConfig struct {
	// Name of the state
	Name models.PlayerState

	// Badges associated with the state, starting with the default badge
	Badges []string

	// Guild grants and revokes badges
	Guild platform.Badges

	// Clock for elapsed-time checks, defaults to the system clock
	Clock clock.Clock

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// State is the plain RoleState
type State struct {
	name   models.PlayerState
	badges []string
	guild  platform.Badges
	clock  clock.Clock
	logger *slog.Logger

	rulesMu sync.RWMutex
	rules   map[EventType][]Rule
}

// NewState creates a state from cfg
func NewState(cfg *StateConfig) (*State, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if !cfg.Name.IsValid() {
		return nil, ErrInvalidState
	}
	if len(cfg.Badges) == 0 {
		return nil, ErrEmptyBadges
	}
	if cfg.Guild == nil {
		return nil, ErrNilGuild
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &State{
		name:   cfg.Name,
		badges: append([]string(nil), cfg.Badges...),
		guild:  cfg.Guild,
		clock:  clk,
		logger: logger.With("state", cfg.Name.String()),
		rules:  make(map[EventType][]Rule),
	}, nil
}

// Name identifies the state
func (s *State) Name() models.PlayerState {
	return s.name
}

// Badges returns a copy of the state's badges
func (s *State) Badges() []string {
	return append([]string(nil), s.badges...)
}

// DefaultBadge is the universal badge every state shares
func (s *State) DefaultBadge() string {
	return s.badges[0]
}

// AddTransition appends rule to eventType's rules. Rules are evaluated in
// the order they were added and the first match wins.
func (s *State) AddTransition(eventType EventType, rule Rule) error {
	if !rule.HasTarget() && eventType != EventManualUpdate {
		return ErrRuleWithoutTarget
	}

	s.rulesMu.Lock()
	defer s.rulesMu.Unlock()
	s.rules[eventType] = append(s.rules[eventType], rule)
	return nil
}

// Transitions returns a copy of the registered rules
func (s *State) Transitions() map[EventType][]Rule {
	s.rulesMu.RLock()
	defer s.rulesMu.RUnlock()

	out := make(map[EventType][]Rule, len(s.rules))
	for eventType, rules := range s.rules {
		out[eventType] = append([]Rule(nil), rules...)
	}
	return out
}

// Handle evaluates the rules for the event's type in order. On a manual
// update carrying target_state, the requested state replaces the rule target;
// if it does not parse, no transition happens.
func (s *State) Handle(event *Event) (models.PlayerState, bool) {
	if event == nil {
		return "", false
	}

	s.rulesMu.RLock()
	rules := s.rules[event.Type]
	s.rulesMu.RUnlock()

	now := s.clock.Now()
	for _, rule := range rules {
		if !rule.Matches(event, now) {
			continue
		}

		if event.Type == EventManualUpdate {
			if raw, ok := event.Data[KeyTargetState]; ok {
				target, err := parseTargetState(raw)
				if err != nil {
					s.logger.Warn("ignoring manual update with unknown target",
						"member", event.Member, "target", raw, "error", err)
					return "", false
				}
				return target, true
			}
		}

		if !rule.HasTarget() {
			return "", false
		}
		return rule.Target, true
	}

	return "", false
}

// Enter grants every badge the member does not already hold. A failed grant
// is logged and the remaining badges are still granted.
func (s *State) Enter(ctx context.Context, memberID string) {
	held, known := s.heldBadges(ctx, memberID)

	for i, badge := range s.badges {
		if held[badge] {
			continue
		}
		// without a badge listing we cannot tell; the default badge is universal
		if !known && i == 0 {
			continue
		}
		if err := s.guild.GrantBadge(ctx, memberID, badge); err != nil {
			s.logger.Warn("failed to grant badge", "member", memberID, "badge", badge, "error", err)
			continue
		}
		s.logger.Debug("granted badge", "member", memberID, "badge", badge)
	}
}

// Exit revokes every held badge except the default badge, best effort per badge
func (s *State) Exit(ctx context.Context, memberID string) {
	held, known := s.heldBadges(ctx, memberID)

	for _, badge := range s.badges[1:] {
		if known && !held[badge] {
			continue
		}
		if err := s.guild.RevokeBadge(ctx, memberID, badge); err != nil {
			s.logger.Warn("failed to revoke badge", "member", memberID, "badge", badge, "error", err)
			continue
		}
		s.logger.Debug("revoked badge", "member", memberID, "badge", badge)
	}
}

// Context is empty for plain states
func (s *State) Context(string) map[string]any {
	return map[string]any{}
}

// Forget is a no-op for plain states
func (s *State) Forget(string) {}

func (s *State) heldBadges(ctx context.Context, memberID string) (map[string]bool, bool) {
	badges, err := s.guild.MemberBadges(ctx, memberID)
	if err != nil {
		s.logger.Warn("failed to read member badges", "member", memberID, "error", err)
		return map[string]bool{}, false
	}

	held := make(map[string]bool, len(badges))
	for _, badge := range badges {
		held[badge] = true
	}
	return held, true
}

// ElapsedState is a State that remembers when each member entered it, so
// rules can fire after a time window.
type ElapsedState struct {
	*State

	mu      sync.Mutex
	entered map[string]time.Time
}

// NewElapsedState creates an elapsed-time state from cfg
func NewElapsedState(cfg *StateConfig) (*ElapsedState, error) {
	base, err := NewState(cfg)
	if err != nil {
		return nil, err
	}
	return &ElapsedState{
		State:   base,
		entered: make(map[string]time.Time),
	}, nil
}

// Enter records the entry time and grants the badges
func (s *ElapsedState) Enter(ctx context.Context, memberID string) {
	s.mu.Lock()
	s.entered[memberID] = s.clock.Now()
	s.mu.Unlock()

	s.State.Enter(ctx, memberID)
}

// Exit revokes the badges and forgets the entry time
func (s *ElapsedState) Exit(ctx context.Context, memberID string) {
	s.State.Exit(ctx, memberID)

	s.mu.Lock()
	delete(s.entered, memberID)
	s.mu.Unlock()
}

// Forget drops the member's entry time
func (s *ElapsedState) Forget(memberID string) {
	s.mu.Lock()
	delete(s.entered, memberID)
	s.mu.Unlock()
}

// Context returns {start_time} for members in the state
func (s *ElapsedState) Context(memberID string) map[string]any {
	if start, ok := s.EnteredAt(memberID); ok {
		return map[string]any{KeyStartTime: start}
	}
	return map[string]any{}
}

// EnteredAt returns when the member entered the state
func (s *ElapsedState) EnteredAt(memberID string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	start, ok := s.entered[memberID]
	return start, ok
}

func parseTargetState(raw any) (models.PlayerState, error) {
	switch v := raw.(type) {
	case models.PlayerState:
		return models.ParsePlayerState(string(v))
	case string:
		return models.ParsePlayerState(v)
	default:
		return "", models.ErrUnknownPlayerState
	}
}
