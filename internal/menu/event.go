package menu

import (
	"strings"

	"github.com/vitaliksorokov/pump-short-bot/internal/domain"
)

// Event kinds. Anything that fails to parse becomes KindUnknown;
// the handler folds it back to the main menu instead of erroring.
type Kind int

const (
	KindUnknown Kind = iota
	KindRefresh
	KindBack
	KindReset
	KindToggleNotifications
	KindOpenSubmenu
	KindSetField
	KindTestSignal
)

// Event is a parsed navigation or selection action.
// Field is set for KindOpenSubmenu and KindSetField; Value for KindSetField.
type Event struct {
	Kind  Kind
	Field domain.Field
	Value string
}

// Callback token grammar: plain actions, "menu:<field>" to open a
// submenu, "set:<field>:<value>" to select a value.
const (
	tokenRefresh    = "refresh"
	tokenBack       = "back"
	tokenReset      = "reset"
	tokenToggle     = "toggle_notifications"
	tokenTestSignal = "test_signal"
	prefixSubmenu   = "menu"
	prefixSet       = "set"
)

// ParseEvent turns a raw callback token into a closed Event.
// Unknown actions, unknown fields and malformed tokens all parse to
// KindUnknown rather than an error.
func ParseEvent(token string) Event {
	switch token {
	case tokenRefresh:
		return Event{Kind: KindRefresh}
	case tokenBack:
		return Event{Kind: KindBack}
	case tokenReset:
		return Event{Kind: KindReset}
	case tokenToggle:
		return Event{Kind: KindToggleNotifications}
	case tokenTestSignal:
		return Event{Kind: KindTestSignal}
	}

	parts := strings.SplitN(token, ":", 3)
	switch {
	case len(parts) == 2 && parts[0] == prefixSubmenu:
		f := domain.Field(parts[1])
		if !domain.ValidField(f) {
			return Event{}
		}
		return Event{Kind: KindOpenSubmenu, Field: f}
	case len(parts) == 3 && parts[0] == prefixSet:
		f := domain.Field(parts[1])
		if !domain.ValidField(f) {
			return Event{}
		}
		return Event{Kind: KindSetField, Field: f, Value: parts[2]}
	}
	return Event{}
}

// SubmenuToken encodes the token that opens the submenu for f.
func SubmenuToken(f domain.Field) string {
	return prefixSubmenu + ":" + string(f)
}

// SetToken encodes the token that selects value for f.
func SetToken(f domain.Field, value string) string {
	return prefixSet + ":" + string(f) + ":" + value
}
