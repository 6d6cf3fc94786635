package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aaronromeo/swolecrew/internal/config"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

type server struct {
	log      *slog.Logger
	gen      *workout.Generator
	now      func() time.Time
	sessions *sessionStore
}

type ServerOption func(*server)

func WithGenerator(g *workout.Generator) ServerOption {
	return func(s *server) {
		s.gen = g
	}
}

func WithClock(now func() time.Time) ServerOption {
	return func(s *server) {
		s.now = now
	}
}

func NewServer(cfg *config.Config, logger *slog.Logger, opts ...ServerOption) *fiber.App {
	s := &server{log: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = workout.NewGenerator()
	}
	s.sessions = newSessionStore(cfg.SessionTTL, s.now, func() *form.Controller {
		return form.NewController(s.gen, form.WithMaxUsers(cfg.MaxUsers))
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: true, ReadTimeout: 30 * time.Second, WriteTimeout: 60 * time.Second})
	app.Use(requestLogger(logger))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	registerCatalog(app)
	s.registerSessions(app)
	s.registerPlans(app)
	return app
}

func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return err
	}
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
