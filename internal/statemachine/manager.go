package statemachine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/platform"
)

// Config holds configuration for the manager
type Config struct {
	// Registry of configured states
	Registry *Registry

	// Guild is used to resolve unknown members and reconcile badges
	Guild platform.Badges

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

type manager struct {
	registry *Registry
	resolver *Resolver
	guild    platform.Badges
	logger   *slog.Logger
	locks    *memberLocks

	mu      sync.RWMutex
	current map[string]models.PlayerState
}

// New creates a manager over the configured registry
func New(cfg *Config) (Manager, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Registry.Len() == 0 {
		return nil, ErrNoStates
	}
	if cfg.Guild == nil {
		return nil, ErrNilGuild
	}

	resolver, err := NewResolver(cfg.Registry, cfg.Guild)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &manager{
		registry: cfg.Registry,
		resolver: resolver,
		guild:    cfg.Guild,
		logger:   logger,
		locks:    newMemberLocks(),
		current:  make(map[string]models.PlayerState),
	}, nil
}

func (m *manager) Registry() *Registry {
	return m.registry
}

func (m *manager) CurrentState(memberID string) (models.PlayerState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.current[memberID]
	return state, ok
}

func (m *manager) Snapshot() map[string]models.PlayerState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.current)
}

func (m *manager) ProcessEvent(ctx context.Context, event *Event) error {
	if event == nil {
		return ErrNilEvent
	}
	if event.Member == "" {
		return ErrEmptyMemberID
	}

	unlock := m.locks.Lock(event.Member)
	defer unlock()

	return m.processLocked(ctx, event)
}

func (m *manager) Transition(ctx context.Context, memberID string, target models.PlayerState) error {
	if memberID == "" {
		return ErrEmptyMemberID
	}

	unlock := m.locks.Lock(memberID)
	defer unlock()

	return m.transitionLocked(ctx, memberID, target)
}

func (m *manager) Override(ctx context.Context, memberID string, target models.PlayerState) error {
	if memberID == "" {
		return ErrEmptyMemberID
	}
	if !m.registry.Has(target) {
		return fmt.Errorf("%w: %s", ErrInvalidState, target)
	}

	unlock := m.locks.Lock(memberID)
	defer unlock()

	// Resolved members go through their state's rules first so any manual
	// update rule gets its say. Unresolved members are placed directly.
	if current, ok := m.CurrentState(memberID); ok {
		state, _ := m.registry.Get(current)
		event := NewEvent(EventManualUpdate, memberID, map[string]any{
			KeyTargetState: target.String(),
		})
		if next, ok := state.Handle(event); ok {
			if err := m.transitionLocked(ctx, memberID, next); err != nil {
				return err
			}
		}
	}

	if current, _ := m.CurrentState(memberID); current != target {
		return m.transitionLocked(ctx, memberID, target)
	}
	return nil
}

func (m *manager) Remove(memberID string) bool {
	unlock := m.locks.Lock(memberID)
	defer unlock()

	return m.removeLocked(memberID)
}

// removeLocked expects the member's lock to be held
func (m *manager) removeLocked(memberID string) bool {
	m.mu.Lock()
	current, ok := m.current[memberID]
	delete(m.current, memberID)
	m.mu.Unlock()

	if !ok {
		return false
	}
	if state, found := m.registry.Get(current); found {
		state.Forget(memberID)
	}
	m.logger.Info("member removed", "member", memberID, "state", current.String())
	return true
}

func (m *manager) TickElapsed(ctx context.Context) *TickResult {
	result := &TickResult{}

	for memberID := range m.Snapshot() {
		if ctx.Err() != nil {
			break
		}

		changed, err := m.tickMember(ctx, memberID)
		if err != nil {
			result.Failed++
			m.logger.Warn("elapsed check failed", "member", memberID, "error", err)
			continue
		}
		result.Checked++
		if changed {
			result.Transitioned++
		}
	}

	return result
}

// tickMember builds the TimeElapsed payload under the member's lock so the
// context always belongs to the state that handles it.
func (m *manager) tickMember(ctx context.Context, memberID string) (bool, error) {
	unlock := m.locks.Lock(memberID)
	defer unlock()

	before, ok := m.CurrentState(memberID)
	if !ok {
		return false, nil
	}
	state, _ := m.registry.Get(before)

	event := NewEvent(EventTimeElapsed, memberID, state.Context(memberID))
	if err := m.processLocked(ctx, event); err != nil {
		return false, err
	}

	after, _ := m.CurrentState(memberID)
	return after != before, nil
}

func (m *manager) Reconcile(ctx context.Context) *ReconcileResult {
	result := &ReconcileResult{}
	defaultBadge := m.registry.DefaultBadge()
	known := m.registry.KnownBadges()

	for memberID := range m.Snapshot() {
		if ctx.Err() != nil {
			break
		}
		m.reconcileMember(ctx, memberID, defaultBadge, known, result)
	}

	return result
}

func (m *manager) reconcileMember(ctx context.Context, memberID, defaultBadge string, known map[string]bool, result *ReconcileResult) {
	unlock := m.locks.Lock(memberID)
	defer unlock()

	current, ok := m.CurrentState(memberID)
	if !ok {
		return
	}
	state, _ := m.registry.Get(current)

	badges, err := m.guild.MemberBadges(ctx, memberID)
	if errors.Is(err, platform.ErrMemberNotFound) {
		m.removeLocked(memberID)
		result.Removed++
		return
	}
	if err != nil {
		result.Failed++
		m.logger.Warn("reconcile: failed to read badges", "member", memberID, "error", err)
		return
	}
	result.Checked++

	held := make(map[string]bool, len(badges))
	for _, badge := range badges {
		held[badge] = true
	}

	wanted := make(map[string]bool)
	for _, badge := range state.Badges() {
		wanted[badge] = true
		if held[badge] {
			continue
		}
		if err := m.guild.GrantBadge(ctx, memberID, badge); err != nil {
			result.Failed++
			m.logger.Warn("reconcile: failed to grant badge", "member", memberID, "badge", badge, "error", err)
			continue
		}
		result.Granted++
	}

	for badge := range known {
		if badge == defaultBadge || wanted[badge] || !held[badge] {
			continue
		}
		if err := m.guild.RevokeBadge(ctx, memberID, badge); err != nil {
			result.Failed++
			m.logger.Warn("reconcile: failed to revoke badge", "member", memberID, "badge", badge, "error", err)
			continue
		}
		result.Revoked++
	}
}

// processLocked expects the member's lock to be held
func (m *manager) processLocked(ctx context.Context, event *Event) error {
	current, ok := m.CurrentState(event.Member)
	if !ok {
		resolved, err := m.resolver.Resolve(ctx, event)
		if err != nil {
			m.logger.Warn("dropping event for unresolved member",
				"member", event.Member, "event", event.Type.String(), "error", err)
			return fmt.Errorf("resolve member %s: %w", event.Member, err)
		}
		if err := m.transitionLocked(ctx, event.Member, resolved); err != nil {
			return err
		}
		current = resolved
	}

	state, ok := m.registry.Get(current)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidState, current)
	}

	target, ok := state.Handle(event)
	if !ok {
		return nil
	}
	return m.transitionLocked(ctx, event.Member, target)
}

// transitionLocked expects the member's lock to be held
func (m *manager) transitionLocked(ctx context.Context, memberID string, target models.PlayerState) error {
	next, ok := m.registry.Get(target)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidState, target)
	}

	previous, hadState := m.CurrentState(memberID)
	if hadState {
		if state, ok := m.registry.Get(previous); ok {
			state.Exit(ctx, memberID)
		}
	}

	next.Enter(ctx, memberID)

	m.mu.Lock()
	m.current[memberID] = target
	m.mu.Unlock()

	m.logger.Info("member transitioned", "member", memberID, "from", previous.String(), "to", target.String())
	return nil
}
