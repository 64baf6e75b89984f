package statemachine

import (
	"fmt"
	"slices"
	"time"

	"github.com/KirkDiggler/surety/internal/models"
)

// Condition selects how a Rule inspects an event
type Condition int

const (
	// ConditionManualOverride matches every manual update
	ConditionManualOverride Condition = iota + 1

	// ConditionMessageCount matches once message_count reaches Threshold
	ConditionMessageCount

	// ConditionProofPosted matches an attachment posted in Channel
	ConditionProofPosted

	// ConditionElapsed matches once Window has passed since start_time
	ConditionElapsed

	// ConditionInactivity matches when days_since_last_message exceeds Threshold
	ConditionInactivity

	// ConditionHitConfirmed matches an Emoji reaction in Channel on a message
	// with attachments that mentions the reacting member
	ConditionHitConfirmed
)

func (c Condition) String() string {
	switch c {
	case ConditionManualOverride:
		return "manual override"
	case ConditionMessageCount:
		return "message count"
	case ConditionProofPosted:
		return "proof posted"
	case ConditionElapsed:
		return "time elapsed"
	case ConditionInactivity:
		return "inactivity"
	case ConditionHitConfirmed:
		return "hit confirmed"
	default:
		return fmt.Sprintf("Condition(%d)", int(c))
	}
}

// Rule is a parameterized transition predicate plus the state it leads to.
// An empty Target is only allowed for manual overrides, where the event's
// target_state decides.
type Rule struct {
	Condition Condition
	Threshold int64
	Window    time.Duration
	Channel   string
	Emoji     string
	Target    models.PlayerState
}

// ManualOverride accepts whatever state the manual update names
func ManualOverride() Rule {
	return Rule{Condition: ConditionManualOverride}
}

// MessageCountAtLeast moves to target once the member has posted n messages
func MessageCountAtLeast(n int64, target models.PlayerState) Rule {
	return Rule{Condition: ConditionMessageCount, Threshold: n, Target: target}
}

// ProofPosted moves to target when the member posts an attachment in channel
func ProofPosted(channel string, target models.PlayerState) Rule {
	return Rule{Condition: ConditionProofPosted, Channel: channel, Target: target}
}

// ElapsedAtLeast moves to target once window has passed since the member entered the state
func ElapsedAtLeast(window time.Duration, target models.PlayerState) Rule {
	return Rule{Condition: ConditionElapsed, Window: window, Target: target}
}

// InactiveLongerThan moves to target when the member has been quiet for more than days
func InactiveLongerThan(days int64, target models.PlayerState) Rule {
	return Rule{Condition: ConditionInactivity, Threshold: days, Target: target}
}

// HitConfirmed moves to target when the member confirms a hit on themself
func HitConfirmed(emoji, channel string, target models.PlayerState) Rule {
	return Rule{Condition: ConditionHitConfirmed, Emoji: emoji, Channel: channel, Target: target}
}

// HasTarget reports whether the rule names its own target state
func (r Rule) HasTarget() bool {
	return r.Target != ""
}

// Matches evaluates the rule against event at time now
func (r Rule) Matches(event *Event, now time.Time) bool {
	if event == nil {
		return false
	}

	switch r.Condition {
	case ConditionManualOverride:
		return event.Type == EventManualUpdate

	case ConditionMessageCount:
		count, ok := event.IntValue(KeyMessageCount)
		return ok && count >= r.Threshold

	case ConditionProofPosted:
		channel, _ := event.StringValue(KeyChannelName)
		return channel == r.Channel && event.BoolValue(KeyHasAttachments)

	case ConditionElapsed:
		start, ok := event.TimeValue(KeyStartTime)
		return ok && now.Sub(start) >= r.Window

	case ConditionInactivity:
		days, ok := event.IntValue(KeyDaysSinceLastMessage)
		return ok && days > r.Threshold

	case ConditionHitConfirmed:
		emoji, _ := event.StringValue(KeyEmoji)
		if emoji != r.Emoji {
			return false
		}
		channel, _ := event.StringValue(KeyChannelName)
		if channel != r.Channel {
			return false
		}
		if !event.BoolValue(KeyHasAttachments) {
			return false
		}
		return slices.Contains(event.StringsValue(KeyMentions), event.Member)
	}

	return false
}

// Describe renders the rule for listings
func (r Rule) Describe() string {
	var detail string
	switch r.Condition {
	case ConditionMessageCount:
		detail = fmt.Sprintf(" >= %d", r.Threshold)
	case ConditionProofPosted:
		detail = fmt.Sprintf(" in #%s", r.Channel)
	case ConditionElapsed:
		detail = fmt.Sprintf(" >= %s", r.Window)
	case ConditionInactivity:
		detail = fmt.Sprintf(" > %d days", r.Threshold)
	case ConditionHitConfirmed:
		detail = fmt.Sprintf(" %s in #%s", r.Emoji, r.Channel)
	}

	target := "requested state"
	if r.HasTarget() {
		target = r.Target.String()
	}
	return fmt.Sprintf("%s%s → %s", r.Condition, detail, target)
}
