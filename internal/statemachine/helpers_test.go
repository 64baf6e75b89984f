package statemachine

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/surety/internal/platform"
)

const (
	testGuildBadge      = "guild-1"
	testNewBadge        = "role-new"
	testActiveBadge     = "role-active"
	testEliminatedBadge = "role-eliminated"
	testProofChannel    = "pledge-and-surety"
	testHitChannel      = "hit-confirmed"
	testHitEmoji        = "✅"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGuild keeps badges in memory. Like the real guild, every member
// implicitly holds the default badge.
type fakeGuild struct {
	mu           sync.Mutex
	defaultBadge string
	badges       map[string]map[string]bool
	grants       []string
	revokes      []string
	failGrant    map[string]error
	failRevoke   map[string]error
	readErr      error
	departed     map[string]bool
}

func newFakeGuild(defaultBadge string) *fakeGuild {
	return &fakeGuild{
		defaultBadge: defaultBadge,
		badges:       make(map[string]map[string]bool),
		failGrant:    make(map[string]error),
		failRevoke:   make(map[string]error),
		departed:     make(map[string]bool),
	}
}

func (g *fakeGuild) give(memberID string, badges ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.badges[memberID] == nil {
		g.badges[memberID] = make(map[string]bool)
	}
	for _, badge := range badges {
		g.badges[memberID][badge] = true
	}
}

func (g *fakeGuild) held(memberID string) []string {
	badges, _ := g.MemberBadges(context.Background(), memberID)
	sort.Strings(badges)
	return badges
}

func (g *fakeGuild) MemberBadges(_ context.Context, memberID string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.readErr != nil {
		return nil, g.readErr
	}
	if g.departed[memberID] {
		return nil, platform.ErrMemberNotFound
	}
	out := []string{g.defaultBadge}
	for badge := range g.badges[memberID] {
		if badge != g.defaultBadge {
			out = append(out, badge)
		}
	}
	return out, nil
}

func (g *fakeGuild) GrantBadge(_ context.Context, memberID, badgeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failGrant[badgeID]; err != nil {
		return err
	}
	if g.badges[memberID] == nil {
		g.badges[memberID] = make(map[string]bool)
	}
	g.badges[memberID][badgeID] = true
	g.grants = append(g.grants, memberID+":"+badgeID)
	return nil
}

func (g *fakeGuild) RevokeBadge(_ context.Context, memberID, badgeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failRevoke[badgeID]; err != nil {
		return err
	}
	delete(g.badges[memberID], badgeID)
	g.revokes = append(g.revokes, memberID+":"+badgeID)
	return nil
}

func (g *fakeGuild) grantCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.grants)
}

func (g *fakeGuild) revokeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.revokes)
}
