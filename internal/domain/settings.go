package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidValue is returned when a field update carries a value
// outside the field's enumerated domain.
var ErrInvalidValue = errors.New("invalid value")

// Settings holds one user's signal filter preferences.
// JSON tags match the on-disk settings table keys exactly.
type Settings struct {
	Notifications bool   `json:"notifications"`
	Profile       string `json:"profile"`       // conservative / normal / aggressive
	Timeframe     string `json:"timeframe"`     // 1m / 5m / 15m
	PumpPct       int    `json:"pump_pct"`      // 5 / 10 / 20
	VolumeBucket  string `json:"volume_bucket"` // <50k / 50k-200k / >200k
	Marketcap     string `json:"marketcap"`     // >10M / >50M / all
	CoinsScope    string `json:"coins_scope"`   // top10 / top100 / all
	Mode          string `json:"mode"`          // short / long / both
}

// DefaultSettings returns the record every user starts from.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		Profile:       "normal",
		Timeframe:     "5m",
		PumpPct:       10,
		VolumeBucket:  "50k-200k",
		Marketcap:     ">10M",
		CoinsScope:    "top100",
		Mode:          "short",
	}
}

// Field names the eight configurable settings fields.
type Field string

const (
	FieldNotifications Field = "notifications"
	FieldProfile       Field = "profile"
	FieldTimeframe     Field = "timeframe"
	FieldPumpPct       Field = "pump_pct"
	FieldVolumeBucket  Field = "volume_bucket"
	FieldMarketcap     Field = "marketcap"
	FieldCoinsScope    Field = "coins_scope"
	FieldMode          Field = "mode"
)

// Option is one legal value of a field paired with its button label.
type Option struct {
	Value string
	Label string
}

// fieldDomains is the closed per-field value table. Order matters:
// submenus render options in this order.
var fieldDomains = map[Field][]Option{
	FieldProfile: {
		{Value: "conservative", Label: "🟢 conservative"},
		{Value: "normal", Label: "🟡 normal"},
		{Value: "aggressive", Label: "🔴 aggressive"},
	},
	FieldTimeframe: {
		{Value: "1m", Label: "1m"},
		{Value: "5m", Label: "5m"},
		{Value: "15m", Label: "15m"},
	},
	FieldPumpPct: {
		{Value: "5", Label: ">5%"},
		{Value: "10", Label: ">10%"},
		{Value: "20", Label: ">20%"},
	},
	FieldVolumeBucket: {
		{Value: "<50k", Label: "<50k"},
		{Value: "50k-200k", Label: "50k-200k"},
		{Value: ">200k", Label: ">200k"},
	},
	FieldMarketcap: {
		{Value: ">10M", Label: ">10M"},
		{Value: ">50M", Label: ">50M"},
		{Value: "all", Label: "all"},
	},
	FieldCoinsScope: {
		{Value: "top10", Label: "top10"},
		{Value: "top100", Label: "top100"},
		{Value: "all", Label: "all"},
	},
	FieldMode: {
		{Value: "short", Label: "short"},
		{Value: "long", Label: "long"},
		{Value: "both", Label: "both"},
	},
}

// FieldOptions returns the ordered legal values for a field,
// or nil if the field has no enumerated submenu (notifications is a toggle).
func FieldOptions(f Field) []Option {
	return fieldDomains[f]
}

// ValidField reports whether f names a submenu-selectable field.
func ValidField(f Field) bool {
	_, ok := fieldDomains[f]
	return ok
}

// WithField returns a copy of s with the given field set to raw.
// raw must be a member of the field's domain (pump_pct is parsed from
// its textual encoding); otherwise ErrInvalidValue is returned and the
// receiver is untouched.
func (s Settings) WithField(f Field, raw string) (Settings, error) {
	opts, ok := fieldDomains[f]
	if !ok {
		return s, fmt.Errorf("%w: unknown field %q", ErrInvalidValue, string(f))
	}
	member := false
	for _, o := range opts {
		if o.Value == raw {
			member = true
			break
		}
	}
	if !member {
		return s, fmt.Errorf("%w: %s=%q", ErrInvalidValue, string(f), raw)
	}

	switch f {
	case FieldProfile:
		s.Profile = raw
	case FieldTimeframe:
		s.Timeframe = raw
	case FieldPumpPct:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return s, fmt.Errorf("%w: %s=%q", ErrInvalidValue, string(f), raw)
		}
		s.PumpPct = n
	case FieldVolumeBucket:
		s.VolumeBucket = raw
	case FieldMarketcap:
		s.Marketcap = raw
	case FieldCoinsScope:
		s.CoinsScope = raw
	case FieldMode:
		s.Mode = raw
	}
	return s, nil
}

// FromMap rebuilds a Settings record from a loosely-typed stored entry,
// field by field over the closed field set: a missing or malformed field
// takes its default, unknown keys are dropped. Enum fields additionally
// fall back to the default when the stored value left the domain (e.g.
// after a hand edit of the settings file).
func FromMap(raw map[string]any) Settings {
	s := DefaultSettings()
	if raw == nil {
		return s
	}

	if v, ok := raw["notifications"].(bool); ok {
		s.Notifications = v
	}
	if v, ok := enumFrom(raw, FieldProfile); ok {
		s.Profile = v
	}
	if v, ok := enumFrom(raw, FieldTimeframe); ok {
		s.Timeframe = v
	}
	if v, ok := raw["pump_pct"]; ok {
		// JSON numbers decode as float64.
		if f, ok := v.(float64); ok {
			if n := int(f); inDomain(FieldPumpPct, strconv.Itoa(n)) {
				s.PumpPct = n
			}
		}
	}
	if v, ok := enumFrom(raw, FieldVolumeBucket); ok {
		s.VolumeBucket = v
	}
	if v, ok := enumFrom(raw, FieldMarketcap); ok {
		s.Marketcap = v
	}
	if v, ok := enumFrom(raw, FieldCoinsScope); ok {
		s.CoinsScope = v
	}
	if v, ok := enumFrom(raw, FieldMode); ok {
		s.Mode = v
	}
	return s
}

func enumFrom(raw map[string]any, f Field) (string, bool) {
	v, ok := raw[string(f)].(string)
	if !ok || !inDomain(f, v) {
		return "", false
	}
	return v, true
}

func inDomain(f Field, v string) bool {
	for _, o := range fieldDomains[f] {
		if o.Value == v {
			return true
		}
	}
	return false
}
