package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vitaliksorokov/pump-short-bot/internal/access"
	"github.com/vitaliksorokov/pump-short-bot/internal/journal"
	"github.com/vitaliksorokov/pump-short-bot/internal/store"
)

// Router wires Telegram updates to handlers.
type Router struct {
	bot      *tgbotapi.BotAPI
	log      *zap.Logger
	store    store.Store
	journal  *journal.Journal
	gate     access.AllowList
	limiters map[int64]*rate.Limiter // chatID -> limiter
	mu       sync.Mutex
}

// NewRouter creates a new Telegram router.
func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, st store.Store, j *journal.Journal, gate access.AllowList) *Router {
	return &Router{
		bot:      bot,
		log:      log,
		store:    st,
		journal:  j,
		gate:     gate,
		limiters: make(map[int64]*rate.Limiter),
	}
}

// limiter returns the per-chat rate limiter, creating it on first use.
func (r *Router) limiter(chatID int64) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.limiters[chatID]
	if !ok {
		// 3 req/s, burst 5
		l = rate.NewLimiter(3, 5)
		r.limiters[chatID] = l
	}
	return l
}

// HandleUpdate routes a single update to the appropriate handler.
// Updates from chats outside the allow-list are dropped without a reply.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	// Text messages (commands)
	if upd.Message != nil {
		msg := upd.Message
		chatID := msg.Chat.ID
		if !r.gate.Allowed(chatID) {
			return
		}
		if !r.limiter(chatID).Allow() {
			return
		}

		switch {
		case strings.HasPrefix(msg.Text, "/start"):
			r.handleStart(ctx, chatID)
		case strings.HasPrefix(msg.Text, "/status"):
			r.handleStatus(ctx, chatID)
		case strings.HasPrefix(msg.Text, "/stats"):
			r.handleStats(ctx, chatID)
		default:
			// Free-form text: the whole UI is button-driven, ignore.
		}
		return
	}

	// Callback queries (inline buttons)
	if upd.CallbackQuery != nil {
		cb := upd.CallbackQuery
		if cb.Message == nil {
			return
		}
		chatID := cb.Message.Chat.ID
		if !r.gate.Allowed(chatID) {
			return
		}
		if !r.limiter(chatID).Allow() {
			_ = r.answerCallback(cb.ID, tooManyRequestsText)
			return
		}
		r.handleCallback(ctx, cb)
		return
	}
}

// SendMessage sends a plain text message to the given chat.
// This makes Router satisfy broadcast.Sender.
func (r *Router) SendMessage(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
