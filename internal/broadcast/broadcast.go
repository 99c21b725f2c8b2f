// Package broadcast runs the stub signal scanner: a periodic loop that
// sends each opted-in user a simulated signal built from their own
// filters. A real exchange scanner would replace the tick body.
package broadcast

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vitaliksorokov/pump-short-bot/internal/domain"
	"github.com/vitaliksorokov/pump-short-bot/internal/journal"
)

// Sender is a minimal interface the broadcaster needs to send a text message.
// telegram.Router will implement this (method: SendMessage).
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// SettingsSource exposes the stored settings table to the broadcaster.
type SettingsSource interface {
	All() map[int64]domain.Settings
}

// Recorder appends emitted signals to the journal.
type Recorder interface {
	Append(ctx context.Context, e journal.Entry) error
}

// Broadcaster periodically emits simulated signals to opted-in users.
type Broadcaster struct {
	settings SettingsSource
	rec      Recorder
	log      *zap.Logger
	sender   Sender
	interval time.Duration
}

// New creates a Broadcaster ticking at the given interval.
func New(settings SettingsSource, rec Recorder, log *zap.Logger, sender Sender, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		settings: settings,
		rec:      rec,
		log:      log,
		sender:   sender,
		interval: interval,
	}
}

// Run starts the loop until ctx is canceled.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("broadcaster stopping")
			return
		case <-ticker.C:
			b.tick(ctx)
		}
	}
}

// tick performs one broadcast cycle: load the table, send each opted-in
// user a signal rendered from their filters, journal it.
func (b *Broadcaster) tick(ctx context.Context) {
	for chatID, s := range b.settings.All() {
		if !s.Notifications {
			continue
		}
		text := domain.RenderTestSignal(s)
		if err := b.sender.SendMessage(chatID, text); err != nil {
			b.log.Error("send failed", zap.Error(err), zap.Int64("chatID", chatID))
			continue
		}
		entry := journal.Entry{
			UserID:     chatID,
			Direction:  domain.SignalDirection(s),
			Confidence: domain.SignalConfidence(s),
			Origin:     journal.OriginBroadcast,
			Text:       text,
		}
		if err := b.rec.Append(ctx, entry); err != nil {
			b.log.Error("journal append failed", zap.Error(err), zap.Int64("chatID", chatID))
		}
	}
}
