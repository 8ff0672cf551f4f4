// Package telegram wires the login flow and the timetable client to the
// chat transport and decides what reply every inbound event gets.
package telegram

import (
	"context"

	"gopkg.in/telebot.v3"

	"github.com/kvlasov/raspbot/internal/login"
	"github.com/kvlasov/raspbot/internal/sessions"
	"github.com/kvlasov/raspbot/internal/timetable"
	"github.com/kvlasov/raspbot/pkg/logger"
)

func New(
	log logger.Logger,
	conf Config,
	store sessions.Store,
	flow *login.Flow,
	api timetable.API,
) (*Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})

	return &Bot{
		bot:       b,
		store:     store,
		flow:      flow,
		timetable: api,
		log:       log.With("telegram_bot"),
	}, err
}

type Bot struct {
	bot *telebot.Bot
	ctx context.Context

	store     sessions.Store
	flow      *login.Flow
	timetable timetable.API

	log logger.Logger
}

func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.setupHandlers()
	go b.bot.Start()
	return nil
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
