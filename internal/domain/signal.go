package domain

import (
	"fmt"
	"strings"
)

// approxVolume maps a volume bucket to the illustrative volume figure
// shown in simulated signals.
var approxVolume = map[string]string{
	"<50k":     "~30k",
	"50k-200k": "~120k",
	">200k":    "~450k",
}

// SignalDirection derives the simulated signal direction from the mode filter.
func SignalDirection(s Settings) string {
	if s.Mode == "short" || s.Mode == "both" {
		return "SHORT"
	}
	return "LONG"
}

// SignalConfidence derives the simulated confidence from the risk profile.
func SignalConfidence(s Settings) string {
	switch s.Profile {
	case "conservative":
		return "HIGH"
	case "normal":
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// RenderTestSignal builds a deterministic simulated signal from the
// user's filters. It is a placeholder formatter: the figures are derived
// from the settings, not from market data.
func RenderTestSignal(s Settings) string {
	reasons := []string{
		fmt.Sprintf("рост %d%% за %s", s.PumpPct+7, s.Timeframe),
		"объём " + approxVolume[s.VolumeBucket],
		"верхний фитиль на свече (пример)",
		"объём начал снижаться (пример)",
		"подтверждение 1 свечой (пример)",
	}

	var b strings.Builder
	b.WriteString("🚨 TEST SIGNAL\n")
	b.WriteString("COIN: TESTCOIN/USDT\n")
	b.WriteString("Direction: " + SignalDirection(s) + "\n")
	b.WriteString("Timeframe: " + s.Timeframe + "\n")
	b.WriteString("Confidence: " + SignalConfidence(s) + "\n\n")
	fmt.Fprintf(&b, "Filters: profile=%s, coins=%s, mcap=%s, vol=%s, pump=>%d%%\n\n",
		s.Profile, s.CoinsScope, s.Marketcap, s.VolumeBucket, s.PumpPct)
	b.WriteString("Reasons:\n")
	for _, r := range reasons {
		b.WriteString("• " + r + "\n")
	}
	b.WriteString("\nЭто тестовое сообщение. Реальные сигналы подключим после добавления сканера бирж.")
	return b.String()
}
