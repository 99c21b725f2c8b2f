package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/vitaliksorokov/pump-short-bot/internal/access"
	"github.com/vitaliksorokov/pump-short-bot/internal/broadcast"
	"github.com/vitaliksorokov/pump-short-bot/internal/config"
	"github.com/vitaliksorokov/pump-short-bot/internal/journal"
	"github.com/vitaliksorokov/pump-short-bot/internal/store"
	"github.com/vitaliksorokov/pump-short-bot/internal/telegram"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	journal *journal.Journal
	router  *telegram.Router
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

func (a *App) Run(ctx context.Context) error {
	gate := access.ParseAllowList(a.cfg.ChatIDs)
	a.log.Info("starting pump-short-bot",
		zap.String("http", a.cfg.HTTPAddr),
		zap.Int("allowListSize", gate.Len()),
	)

	settings, err := store.NewFileStore(a.cfg.SettingsPath, a.log)
	if err != nil {
		a.log.Error("settings store init failed", zap.Error(err))
		return err
	}

	j, err := journal.Open(ctx, a.cfg.JournalPath)
	if err != nil {
		a.log.Error("open journal failed", zap.Error(err))
		return err
	}
	a.journal = j
	a.log.Info("journal ready")

	a.router = telegram.NewRouter(a.bot, a.log, settings, j, gate)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The scanner stub stays off unless explicitly configured.
	if a.cfg.BroadcastInterval > 0 {
		b := broadcast.New(settings, j, a.log, a.router, a.cfg.BroadcastInterval)
		go b.Run(ctx)
		a.log.Info("broadcaster started", zap.Duration("interval", a.cfg.BroadcastInterval))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			// Create a short-lived shutdown context and cancel it immediately after use.
			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()

			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			if a.journal != nil {
				_ = a.journal.Close()
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}
