package menu

import (
	"strings"
	"testing"

	"github.com/vitaliksorokov/pump-short-bot/internal/domain"
)

func TestParseEvent(t *testing.T) {
	cases := []struct {
		token string
		want  Event
	}{
		{"refresh", Event{Kind: KindRefresh}},
		{"back", Event{Kind: KindBack}},
		{"reset", Event{Kind: KindReset}},
		{"toggle_notifications", Event{Kind: KindToggleNotifications}},
		{"test_signal", Event{Kind: KindTestSignal}},
		{"menu:profile", Event{Kind: KindOpenSubmenu, Field: domain.FieldProfile}},
		{"set:pump_pct:20", Event{Kind: KindSetField, Field: domain.FieldPumpPct, Value: "20"}},
		{"set:volume_bucket:50k-200k", Event{Kind: KindSetField, Field: domain.FieldVolumeBucket, Value: "50k-200k"}},
		// Malformed and unknown tokens all fold to Unknown.
		{"", Event{}},
		{"menu:", Event{}},
		{"menu:bogus", Event{}},
		{"set:profile", Event{}},
		{"set:bogus:x", Event{}},
		{"frobnicate", Event{}},
	}
	for _, c := range cases {
		if got := ParseEvent(c.token); got != c.want {
			t.Fatalf("ParseEvent(%q): want %+v, got %+v", c.token, c.want, got)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, f := range []domain.Field{
		domain.FieldProfile, domain.FieldTimeframe, domain.FieldPumpPct,
		domain.FieldVolumeBucket, domain.FieldMarketcap, domain.FieldCoinsScope, domain.FieldMode,
	} {
		ev := ParseEvent(SubmenuToken(f))
		if ev.Kind != KindOpenSubmenu || ev.Field != f {
			t.Fatalf("submenu token for %s did not round-trip: %+v", f, ev)
		}
		for _, o := range domain.FieldOptions(f) {
			ev := ParseEvent(SetToken(f, o.Value))
			if ev.Kind != KindSetField || ev.Field != f || ev.Value != o.Value {
				t.Fatalf("set token %s=%s did not round-trip: %+v", f, o.Value, ev)
			}
		}
	}
}

func TestHandle_RefreshAndBackKeepSettings(t *testing.T) {
	s := domain.DefaultSettings()
	s.Profile = "aggressive"
	for _, kind := range []Kind{KindRefresh, KindBack} {
		scr, updated := Handle(Event{Kind: kind}, s)
		if updated != nil {
			t.Fatalf("kind=%d: unexpected mutation", kind)
		}
		if scr.Kind != ScreenMain || scr.Settings != s {
			t.Fatalf("kind=%d: want unchanged main menu", kind)
		}
	}
}

func TestHandle_ResetRestoresDefaults(t *testing.T) {
	s := domain.DefaultSettings()
	s.Mode = "both"
	s.Notifications = false

	scr, updated := Handle(Event{Kind: KindReset}, s)
	if updated == nil || *updated != domain.DefaultSettings() {
		t.Fatalf("want defaults mutation, got %+v", updated)
	}
	if scr.Kind != ScreenMain || scr.Settings != domain.DefaultSettings() {
		t.Fatal("want main menu over defaults")
	}
}

func TestHandle_ToggleNotifications(t *testing.T) {
	s := domain.DefaultSettings()
	scr, updated := Handle(Event{Kind: KindToggleNotifications}, s)
	if updated == nil || updated.Notifications {
		t.Fatal("want notifications flipped off")
	}
	if scr.Settings.Notifications {
		t.Fatal("screen shows stale notifications state")
	}

	_, again := Handle(Event{Kind: KindToggleNotifications}, *updated)
	if again == nil || !again.Notifications {
		t.Fatal("want notifications flipped back on")
	}
}

func TestHandle_OpenSubmenuListsDomain(t *testing.T) {
	s := domain.DefaultSettings()
	scr, updated := Handle(Event{Kind: KindOpenSubmenu, Field: domain.FieldPumpPct}, s)
	if updated != nil {
		t.Fatal("submenu must not mutate")
	}
	if scr.Kind != ScreenSubmenu {
		t.Fatalf("want submenu screen, got %d", scr.Kind)
	}
	// One row per option plus the back row.
	opts := domain.FieldOptions(domain.FieldPumpPct)
	if len(scr.Rows) != len(opts)+1 {
		t.Fatalf("want %d rows, got %d", len(opts)+1, len(scr.Rows))
	}
	for i, o := range opts {
		btn := scr.Rows[i][0]
		if btn.Label != o.Label || btn.Token != SetToken(domain.FieldPumpPct, o.Value) {
			t.Fatalf("row %d: %+v", i, btn)
		}
	}
	back := scr.Rows[len(scr.Rows)-1][0]
	if back.Token != "back" {
		t.Fatalf("last row is not back: %+v", back)
	}
}

func TestHandle_SetFieldSaves(t *testing.T) {
	s := domain.DefaultSettings()
	scr, updated := Handle(Event{Kind: KindSetField, Field: domain.FieldTimeframe, Value: "15m"}, s)
	if updated == nil || updated.Timeframe != "15m" {
		t.Fatalf("want timeframe mutation, got %+v", updated)
	}
	if !strings.Contains(scr.Text, "✅ Сохранено.") {
		t.Fatalf("want saved header, got %q", scr.Text)
	}
}

func TestHandle_InvalidSelectionIsNoOp(t *testing.T) {
	s := domain.DefaultSettings()
	s.PumpPct = 20
	scr, updated := Handle(Event{Kind: KindSetField, Field: domain.FieldPumpPct, Value: "999"}, s)
	if updated != nil {
		t.Fatal("invalid selection must not mutate")
	}
	if scr.Kind != ScreenMain || scr.Settings != s {
		t.Fatal("want unchanged main menu")
	}
}

func TestHandle_TestSignalPreview(t *testing.T) {
	s := domain.DefaultSettings()
	scr, updated := Handle(Event{Kind: KindTestSignal}, s)
	if updated != nil {
		t.Fatal("preview must not mutate")
	}
	if scr.Kind != ScreenSignalPreview {
		t.Fatalf("want preview screen, got %d", scr.Kind)
	}
	if !strings.Contains(scr.Signal, "TEST SIGNAL") {
		t.Fatalf("unexpected signal text: %q", scr.Signal)
	}
	// Menu message underneath is the regular main menu.
	if !strings.Contains(scr.Text, "🤖 Панель управления ботом.") || len(scr.Rows) == 0 {
		t.Fatal("preview screen must carry the main menu")
	}
}

func TestHandle_UnknownFallsBackToMainMenu(t *testing.T) {
	s := domain.DefaultSettings()
	scr, updated := Handle(ParseEvent("definitely:not:a:token"), s)
	if updated != nil {
		t.Fatal("unknown event must not mutate")
	}
	if scr.Kind != ScreenMain || scr.Settings != s {
		t.Fatal("want unchanged main menu")
	}
}

func TestMainRows_ReflectSettings(t *testing.T) {
	s := domain.DefaultSettings()
	s.Notifications = false
	rows := MainRows(s)
	if rows[0][0].Label != "⛔ Уведомления: ВЫКЛ" {
		t.Fatalf("toggle label: %q", rows[0][0].Label)
	}
	s.Notifications = true
	if MainRows(s)[0][0].Label != "✅ Уведомления: ВКЛ" {
		t.Fatal("toggle label for enabled state")
	}
}
