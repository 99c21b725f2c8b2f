package menu

import (
	"fmt"

	"github.com/vitaliksorokov/pump-short-bot/internal/domain"
)

// ScreenKind tags what the transport should render next.
type ScreenKind int

const (
	ScreenMain ScreenKind = iota
	ScreenSubmenu
	ScreenSignalPreview
)

// Button is one selectable option: a label plus the callback token it emits.
type Button struct {
	Label string
	Token string
}

// Screen describes the next UI state. Text and Rows are always set.
// For ScreenSignalPreview, Signal carries the simulated signal to send
// as a separate message while Text/Rows describe the refreshed main menu
// underneath it.
type Screen struct {
	Kind     ScreenKind
	Settings domain.Settings
	Text     string
	Rows     [][]Button
	Signal   string
}

// Screen headers and status block, in the bot's native register.
const (
	headerPanel = "🤖 Панель управления ботом."
	headerSaved = "✅ Сохранено."
	headerReset = "♻️ Сброшено к настройкам по умолчанию."
)

var submenuPrompts = map[domain.Field]string{
	domain.FieldProfile:      "Выбери профиль:",
	domain.FieldTimeframe:    "Выбери таймфрейм:",
	domain.FieldPumpPct:      "Выбери порог роста:",
	domain.FieldVolumeBucket: "Выбери фильтр объёма:",
	domain.FieldMarketcap:    "Выбери фильтр капитализации:",
	domain.FieldCoinsScope:   "Выбери список монет:",
	domain.FieldMode:         "Выбери режим сигналов:",
}

// StatusText renders the settings summary block shown on every main screen.
func StatusText(s domain.Settings) string {
	notif := "ВЫКЛ"
	if s.Notifications {
		notif = "ВКЛ"
	}
	return "⚙️ Текущие настройки:\n" +
		fmt.Sprintf("• Уведомления: %s\n", notif) +
		fmt.Sprintf("• Профиль: %s\n", s.Profile) +
		fmt.Sprintf("• Таймфрейм: %s\n", s.Timeframe) +
		fmt.Sprintf("• Рост: >%d%%\n", s.PumpPct) +
		fmt.Sprintf("• Объём: %s\n", s.VolumeBucket) +
		fmt.Sprintf("• Капитализация: %s\n", s.Marketcap) +
		fmt.Sprintf("• Монеты: %s\n", s.CoinsScope) +
		fmt.Sprintf("• Режим сигналов: %s\n", s.Mode)
}

// MainScreen builds the control-panel screen for the given settings.
func MainScreen(s domain.Settings) Screen {
	return mainScreen(s, headerPanel)
}

func mainScreen(s domain.Settings, header string) Screen {
	return Screen{
		Kind:     ScreenMain,
		Settings: s,
		Text:     header + "\n\n" + StatusText(s),
		Rows:     MainRows(s),
	}
}

// MainRows builds the main-menu button layout from the current settings.
func MainRows(s domain.Settings) [][]Button {
	notif := "⛔ Уведомления: ВЫКЛ"
	if s.Notifications {
		notif = "✅ Уведомления: ВКЛ"
	}
	return [][]Button{
		{{Label: notif, Token: tokenToggle}},
		{
			{Label: "Профиль: " + s.Profile, Token: SubmenuToken(domain.FieldProfile)},
			{Label: "TF: " + s.Timeframe, Token: SubmenuToken(domain.FieldTimeframe)},
		},
		{
			{Label: fmt.Sprintf("Рост: >%d%%", s.PumpPct), Token: SubmenuToken(domain.FieldPumpPct)},
			{Label: "Объём: " + s.VolumeBucket, Token: SubmenuToken(domain.FieldVolumeBucket)},
		},
		{
			{Label: "Капа: " + s.Marketcap, Token: SubmenuToken(domain.FieldMarketcap)},
			{Label: "Монеты: " + s.CoinsScope, Token: SubmenuToken(domain.FieldCoinsScope)},
		},
		{{Label: "Режим: " + s.Mode, Token: SubmenuToken(domain.FieldMode)}},
		{{Label: "📣 Тестовый сигнал", Token: tokenTestSignal}},
		{
			{Label: "🔄 Обновить экран", Token: tokenRefresh},
			{Label: "♻️ Сброс", Token: tokenReset},
		},
	}
}

func submenuScreen(s domain.Settings, f domain.Field) Screen {
	opts := domain.FieldOptions(f)
	rows := make([][]Button, 0, len(opts)+1)
	for _, o := range opts {
		rows = append(rows, []Button{{Label: o.Label, Token: SetToken(f, o.Value)}})
	}
	rows = append(rows, []Button{{Label: "⬅️ Назад", Token: tokenBack}})
	return Screen{
		Kind:     ScreenSubmenu,
		Settings: s,
		Text:     submenuPrompts[f],
		Rows:     rows,
	}
}

// Handle applies a single event to the current settings. It is a pure
// function: the returned *Settings is the record to persist, or nil when
// the event causes no mutation. Invalid selections and unknown events
// fall back to the unchanged main menu.
func Handle(ev Event, s domain.Settings) (Screen, *domain.Settings) {
	switch ev.Kind {
	case KindRefresh, KindBack:
		return MainScreen(s), nil

	case KindReset:
		d := domain.DefaultSettings()
		return mainScreen(d, headerReset), &d

	case KindToggleNotifications:
		s.Notifications = !s.Notifications
		return MainScreen(s), &s

	case KindOpenSubmenu:
		return submenuScreen(s, ev.Field), nil

	case KindSetField:
		updated, err := s.WithField(ev.Field, ev.Value)
		if err != nil {
			// Out-of-domain selection: deliberate silent no-op.
			return MainScreen(s), nil
		}
		return mainScreen(updated, headerSaved), &updated

	case KindTestSignal:
		scr := MainScreen(s)
		scr.Kind = ScreenSignalPreview
		scr.Signal = domain.RenderTestSignal(s)
		return scr, nil

	default:
		return MainScreen(s), nil
	}
}
