package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/vitaliksorokov/pump-short-bot/internal/domain"
	"github.com/vitaliksorokov/pump-short-bot/internal/journal"
	"github.com/vitaliksorokov/pump-short-bot/internal/menu"
)

// --- Generic helpers ---

func (r *Router) sendText(chatID int64, text string) {
	_, _ = r.bot.Send(tgbotapi.NewMessage(chatID, text))
}

func (r *Router) answerCallback(id, text string) error {
	_, err := r.bot.Request(tgbotapi.NewCallback(id, text))
	return err
}

// --- Core commands ---

func (r *Router) handleStart(_ context.Context, chatID int64) {
	s := r.store.Load(chatID)
	scr := menu.MainScreen(s)
	msg := tgbotapi.NewMessage(chatID, scr.Text)
	msg.ReplyMarkup = inlineMarkup(scr.Rows)
	_, _ = r.bot.Send(msg)
}

func (r *Router) handleStatus(_ context.Context, chatID int64) {
	s := r.store.Load(chatID)
	msg := tgbotapi.NewMessage(chatID, statusPrefix+menu.StatusText(s))
	msg.ReplyMarkup = inlineMarkup(menu.MainRows(s))
	_, _ = r.bot.Send(msg)
}

func (r *Router) handleStats(ctx context.Context, chatID int64) {
	total, err := r.journal.CountByUser(ctx, chatID)
	if err != nil {
		r.log.Error("journal count failed", zap.Error(err), zap.Int64("chatID", chatID))
		r.sendText(chatID, statsFailedText)
		return
	}
	if total == 0 {
		r.sendText(chatID, statsEmptyText)
		return
	}

	recent, err := r.journal.RecentByUser(ctx, chatID, 5)
	if err != nil {
		r.log.Error("journal query failed", zap.Error(err), zap.Int64("chatID", chatID))
		r.sendText(chatID, statsFailedText)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, statsHeaderFmt, total)
	for _, e := range recent {
		fmt.Fprintf(&b, "• %s — %s/%s (%s)\n",
			e.CreatedAt.Format("02.01.2006 15:04"),
			e.Direction, e.Confidence, originLabel(e.Origin),
		)
	}
	r.sendText(chatID, b.String())
}

func originLabel(origin string) string {
	if origin == journal.OriginBroadcast {
		return "рассылка"
	}
	return "тест"
}

// --- Callback flow ---

// handleCallback runs one load→handle→save cycle and renders the
// resulting screen by editing the triggering message in place.
func (r *Router) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	s := r.store.Load(chatID)

	ev := menu.ParseEvent(cb.Data)
	scr, updated := menu.Handle(ev, s)

	if updated != nil {
		if err := r.store.Save(chatID, *updated); err != nil {
			r.log.Error("settings save failed", zap.Error(err), zap.Int64("chatID", chatID))
			_ = r.answerCallback(cb.ID, saveFailedText)
			// Disk still holds the pre-save record; show it.
			r.editScreen(chatID, cb.Message.MessageID, menu.MainScreen(s))
			return
		}
	}

	_ = r.answerCallback(cb.ID, "")

	if scr.Kind == menu.ScreenSignalPreview {
		r.sendText(chatID, scr.Signal)
		r.recordPreview(ctx, chatID, scr.Settings, scr.Signal)
	}
	r.editScreen(chatID, cb.Message.MessageID, scr)
}

// editScreen replaces the menu message's text and keyboard.
func (r *Router) editScreen(chatID int64, messageID int, scr menu.Screen) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, scr.Text, inlineMarkup(scr.Rows))
	if _, err := r.bot.Send(edit); err != nil {
		r.log.Warn("edit message failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
}

func (r *Router) recordPreview(ctx context.Context, chatID int64, s domain.Settings, text string) {
	entry := journal.Entry{
		UserID:     chatID,
		Direction:  domain.SignalDirection(s),
		Confidence: domain.SignalConfidence(s),
		Origin:     journal.OriginPreview,
		Text:       text,
	}
	if err := r.journal.Append(ctx, entry); err != nil {
		r.log.Error("journal append failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
}
