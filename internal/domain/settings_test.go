package domain

import (
	"errors"
	"testing"
)

func TestWithField_ValidSelection(t *testing.T) {
	s := DefaultSettings()
	updated, err := s.WithField(FieldProfile, "aggressive")
	if err != nil {
		t.Fatalf("WithField: %v", err)
	}
	if updated.Profile != "aggressive" {
		t.Fatalf("want aggressive, got %s", updated.Profile)
	}
	// Original copy untouched.
	if s.Profile != "normal" {
		t.Fatalf("receiver mutated: %s", s.Profile)
	}
}

func TestWithField_NumericParse(t *testing.T) {
	s := DefaultSettings()
	updated, err := s.WithField(FieldPumpPct, "20")
	if err != nil {
		t.Fatalf("WithField: %v", err)
	}
	if updated.PumpPct != 20 {
		t.Fatalf("want 20, got %d", updated.PumpPct)
	}
}

func TestWithField_OutOfDomain(t *testing.T) {
	s := DefaultSettings()
	cases := []struct {
		field Field
		value string
	}{
		{FieldPumpPct, "999"},
		{FieldProfile, "reckless"},
		{FieldMode, ""},
		{Field("nonexistent"), "short"},
	}
	for _, c := range cases {
		got, err := s.WithField(c.field, c.value)
		if !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("%s=%q: want ErrInvalidValue, got %v", c.field, c.value, err)
		}
		if got != s {
			t.Fatalf("%s=%q: settings changed on invalid value", c.field, c.value)
		}
	}
}

func TestFromMap_RepairsPartialRecord(t *testing.T) {
	// profile missing, foo unknown: profile falls back to default, foo is dropped.
	raw := map[string]any{
		"notifications": false,
		"timeframe":     "15m",
		"pump_pct":      float64(20),
		"foo":           "bar",
	}
	s := FromMap(raw)
	if s.Profile != "normal" {
		t.Fatalf("want default profile, got %s", s.Profile)
	}
	if s.Notifications {
		t.Fatal("want notifications off")
	}
	if s.Timeframe != "15m" || s.PumpPct != 20 {
		t.Fatalf("stored fields lost: tf=%s pump=%d", s.Timeframe, s.PumpPct)
	}
}

func TestFromMap_OutOfDomainValueFallsBack(t *testing.T) {
	raw := map[string]any{
		"mode":     "sideways",
		"pump_pct": float64(42),
	}
	s := FromMap(raw)
	if s.Mode != "short" {
		t.Fatalf("want default mode, got %s", s.Mode)
	}
	if s.PumpPct != 10 {
		t.Fatalf("want default pump_pct, got %d", s.PumpPct)
	}
}

func TestFromMap_Nil(t *testing.T) {
	if got := FromMap(nil); got != DefaultSettings() {
		t.Fatalf("want defaults, got %+v", got)
	}
}

func TestFieldOptions_Closed(t *testing.T) {
	if opts := FieldOptions(FieldNotifications); opts != nil {
		t.Fatalf("notifications is a toggle, want nil options, got %v", opts)
	}
	if opts := FieldOptions(FieldProfile); len(opts) != 3 {
		t.Fatalf("want 3 profile options, got %d", len(opts))
	}
}
