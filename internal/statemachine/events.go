package statemachine

import (
	"fmt"
	"time"
)

// EventType is the kind of notification that can move a member between states
type EventType int

const (
	EventMessage EventType = iota + 1
	EventMemberJoin
	EventReactionAdd
	EventManualUpdate
	EventInactivity
	EventTimeElapsed
)

// Keys read from Event.Data. Each condition only looks at the keys it needs.
const (
	KeyMessageCount         = "message_count"
	KeyChannelName          = "channel_name"
	KeyHasAttachments       = "has_attachments"
	KeyEmoji                = "emoji"
	KeyMentions             = "mentions"
	KeyStartTime            = "start_time"
	KeyDaysSinceLastMessage = "days_since_last_message"
	KeyTargetState          = "target_state"
)

// EventTypes lists every event type in declaration order
func EventTypes() []EventType {
	return []EventType{
		EventMessage,
		EventMemberJoin,
		EventReactionAdd,
		EventManualUpdate,
		EventInactivity,
		EventTimeElapsed,
	}
}

func (t EventType) String() string {
	switch t {
	case EventMessage:
		return "MESSAGE"
	case EventMemberJoin:
		return "MEMBER_JOIN"
	case EventReactionAdd:
		return "REACTION_ADD"
	case EventManualUpdate:
		return "MANUAL_UPDATE"
	case EventInactivity:
		return "INACTIVITY"
	case EventTimeElapsed:
		return "TIME_ELAPSED"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is a notification about one member
type Event struct {
	Type   EventType
	Member string
	Data   map[string]any
}

// NewEvent builds an event, never leaving Data nil
func NewEvent(eventType EventType, memberID string, data map[string]any) *Event {
	if data == nil {
		data = map[string]any{}
	}
	return &Event{
		Type:   eventType,
		Member: memberID,
		Data:   data,
	}
}

// IntValue reads an integer payload value, accepting any integer or float kind
func (e *Event) IntValue(key string) (int64, bool) {
	switch v := e.Data[key].(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// StringValue reads a string payload value
func (e *Event) StringValue(key string) (string, bool) {
	switch v := e.Data[key].(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// BoolValue reads a boolean payload value, missing keys read as false
func (e *Event) BoolValue(key string) bool {
	v, _ := e.Data[key].(bool)
	return v
}

// TimeValue reads a timestamp payload value
func (e *Event) TimeValue(key string) (time.Time, bool) {
	switch v := e.Data[key].(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	}
	return time.Time{}, false
}

// StringsValue reads a list-of-IDs payload value
func (e *Event) StringsValue(key string) []string {
	v, _ := e.Data[key].([]string)
	return v
}
