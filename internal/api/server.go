// Package api exposes liveness and readiness over HTTP for the deployment
// environment; the bot itself does not serve user traffic here.
package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kvlasov/raspbot/internal/sessions"
	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

func NewServer(cfg Config, log logger.Logger, store sessions.Store) Server {
	serveLog := log.With("ops_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		DisableStartupMessage: true,
		RequestMethods:        []string{fiber.MethodGet},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		store: store,
		http:  fiber.New(fiberCfg),
		addr:  cfg.HTTP.Addr,
		log:   serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	store sessions.Store
	http  *fiber.App
	addr  string
	log   logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.New("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/live", s.handleLive)
	s.http.Get("/ready", s.handleReady)
}

func (s *server) handleLive(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(map[string]string{"status": "OK"})
}

// handleReady reports ready only when the session store answers.
func (s *server) handleReady(c *fiber.Ctx) error {
	err := s.store.Ping(c.Context())
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "ping session store"))
		return c.Status(http.StatusServiceUnavailable).JSON(map[string]string{"status": "ERROR"})
	}

	return c.Status(http.StatusOK).JSON(map[string]string{"status": "OK"})
}
