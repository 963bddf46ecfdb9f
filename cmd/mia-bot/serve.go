package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/mercellinas/mia-bot/internal/adapters/http"
	firestorestore "github.com/mercellinas/mia-bot/internal/adapters/storage/firestore"
	memstore "github.com/mercellinas/mia-bot/internal/adapters/storage/memory"
	"github.com/mercellinas/mia-bot/internal/adapters/telegram"
	"github.com/mercellinas/mia-bot/internal/app/conversation"
	"github.com/mercellinas/mia-bot/internal/app/dispatcher"
	"github.com/mercellinas/mia-bot/internal/catalog"
	"github.com/mercellinas/mia-bot/internal/config"
	"github.com/mercellinas/mia-bot/internal/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(parent context.Context, cfg *config.Config) error {
	log := observability.Logger()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	streamer, err := newStreamer(ctx, cfg)
	if err != nil {
		return err
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramDebug)
	if err != nil {
		return err
	}

	var exporter *firestorestore.Store
	if cfg.StorageBackend == "firestore" {
		log.Info("history will also be exported to Firestore", "project", cfg.GCPProjectID)
		exporter, err = firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			return err
		}
		defer exporter.Close()
	}

	sessions := memstore.NewSessionLog()
	d := dispatcher.New(
		conversation.NewService(streamer),
		bot,
		sessions,
		catalog.NewRandomPicker[string](uint64(time.Now().UnixNano())),
	)

	var ops *http.Server
	if cfg.HTTPAddr != "" {
		ops = &http.Server{Addr: cfg.HTTPAddr, Handler: httpadapter.NewServer()}
		go func() {
			log.Info("ops server listening", "addr", cfg.HTTPAddr)
			if err := ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("ops server failed", "error", err)
			}
		}()
	}

	log.Info("💬 MIA is running and ready to slay! 💇‍♀️")
	d.Run(ctx, bot.Listen(ctx))
	log.Info("💬 MIA has stopped. Bye, beauty queen! 💔")

	if ops != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = ops.Shutdown(shutdownCtx)
	}

	return saveHistory(sessions, cfg.HistoryPath, exporter)
}

// saveHistory writes the session log once. The file is always written; the
// Firestore export only runs when an exporter is configured.
func saveHistory(sessions *memstore.SessionLog, path string, exporter *firestorestore.Store) error {
	log := observability.Logger()

	if err := sessions.Flush(path); err != nil {
		log.Error("failed to save chat history", "error", err, "path", path)
		return err
	}
	log.Info("💾 Chat history saved", "path", path)

	if exporter == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := exporter.Export(ctx, sessions.Snapshot()); err != nil {
		log.Error("failed to export chat history", "error", err)
		return err
	}
	log.Info("chat history exported to Firestore")
	return nil
}
