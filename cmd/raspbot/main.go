package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kvlasov/raspbot/internal/api"
	"github.com/kvlasov/raspbot/internal/login"
	"github.com/kvlasov/raspbot/internal/sessions"
	"github.com/kvlasov/raspbot/internal/telegram"
	"github.com/kvlasov/raspbot/internal/timetable"
	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	log.Infof("starting raspbot, env=%s", cfg.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := sessions.New(ctx, log, cfg.Sessions)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init session store"))
	}

	client := timetable.NewClient(log, cfg.Timetable)
	flow := login.New(store, client, log, cfg.Login)

	bot, err := telegram.New(log, cfg.Telegram, store, flow, client)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init bot"))
	}

	ops := api.NewServer(cfg.API, log, store)
	go func() {
		err := ops.Serve(ctx)
		if err != nil {
			log.Warn(errors.WrapFail(err, "serve ops http"))
		}
	}()

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")
		bot.Stop()

		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()

		err := ops.Shutdown(shutdownCtx)
		if err != nil {
			log.Warn(errors.WrapFail(err, "shutdown ops http"))
		}

		err = store.Close(shutdownCtx)
		if err != nil {
			log.Warn(errors.WrapFail(err, "close session store"))
		}

		close(stopped)
	})

	err = bot.Run(ctx)
	if err != nil {
		log.Panic(err)
	}
	stdlog.Println("Bot has been started")

	<-stopped
	stdlog.Println("Shutdown complete")
}
