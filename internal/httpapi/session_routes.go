package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/render"
)

type stateResponse struct {
	ID        string            `json:"id"`
	UserCount string            `json:"user_count"`
	Users     []form.UserConfig `json:"users"`
	HasPlans  bool              `json:"has_plans"`
}

type userCountRequest struct {
	Value json.RawMessage `json:"value"`
}

type userPatchRequest struct {
	Name      *string         `json:"name"`
	Goal      *string         `json:"goal"`
	Exercises json.RawMessage `json:"exercises"`
}

func stateOf(sess *session) stateResponse {
	return stateResponse{
		ID:        sess.id,
		UserCount: sess.form.UserCountText(),
		Users:     sess.form.Users(),
		HasPlans:  sess.form.HasPlans(),
	}
}

// rawText accepts a JSON string or a bare JSON number and returns its text.
func rawText(m json.RawMessage) (string, bool) {
	m = bytes.TrimSpace(m)
	if len(m) == 0 || bytes.Equal(m, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s, true
	}
	return string(m), true
}

func (s *server) registerSessions(app *fiber.App) {
	app.Post("/sessions", func(c *fiber.Ctx) error {
		sess := s.sessions.create()
		s.log.Debug("session created", "session", sess.id, "open", s.sessions.len())
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return c.Status(http.StatusCreated).JSON(stateOf(sess))
	})

	app.Get("/sessions/:id", s.withSession(func(c *fiber.Ctx, sess *session) error {
		return c.JSON(stateOf(sess))
	}))

	app.Delete("/sessions/:id", func(c *fiber.Ctx) error {
		if !s.sessions.delete(c.Params("id")) {
			return errorJSON(c, http.StatusNotFound, errSessionNotFound.Error())
		}
		s.log.Debug("session deleted", "session", c.Params("id"))
		return c.SendStatus(http.StatusNoContent)
	})

	app.Put("/sessions/:id/user-count", s.withSession(func(c *fiber.Ctx, sess *session) error {
		var in userCountRequest
		if err := json.Unmarshal(c.Body(), &in); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid json: "+err.Error())
		}
		raw, _ := rawText(in.Value)
		sess.form.SetUserCount(raw)
		return c.JSON(stateOf(sess))
	}))

	app.Patch("/sessions/:id/users/:uid", s.withSession(func(c *fiber.Ctx, sess *session) error {
		uid, err := c.ParamsInt("uid")
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid user id")
		}
		var in userPatchRequest
		if err := json.Unmarshal(c.Body(), &in); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid json: "+err.Error())
		}
		var p form.Patch
		p.Name = in.Name
		if in.Goal != nil {
			g := catalog.ParseGoal(*in.Goal)
			p.Goal = &g
		}
		if raw, ok := rawText(in.Exercises); ok {
			digits := form.SanitizeDigits(raw)
			p.Exercises = &digits
		}
		sess.form.UpdateUser(uid, p)
		return c.JSON(stateOf(sess))
	}))

	app.Post("/sessions/:id/generate", s.withSession(func(c *fiber.Ctx, sess *session) error {
		results := sess.form.GeneratePlans()
		sess.generatedAt = s.now()
		s.log.Debug("plans generated", "session", sess.id, "users", len(results))
		return s.writePlans(c, results, sess, "json")
	}))

	app.Get("/sessions/:id/plans", s.withSession(func(c *fiber.Ctx, sess *session) error {
		return s.writePlans(c, sess.form.Plans(), sess, c.Query("format", "json"))
	}))
}

// withSession resolves :id and runs h while holding the session lock.
func (s *server) withSession(h func(c *fiber.Ctx, sess *session) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := s.sessions.get(c.Params("id"))
		if !ok {
			return errorJSON(c, http.StatusNotFound, errSessionNotFound.Error())
		}
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return h(c, sess)
	}
}

func (s *server) writePlans(c *fiber.Ctx, results []form.Result, sess *session, format string) error {
	on := sess.generatedAt
	if on.IsZero() {
		on = s.now()
	}
	switch strings.ToLower(format) {
	case "text":
		var buf bytes.Buffer
		if err := render.Text(&buf, results); err != nil {
			return errorJSON(c, http.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Send(buf.Bytes())
	case "yaml":
		b, err := render.YAML(render.Document(results, on))
		if err != nil {
			s.log.Error("render plans", "session", sess.id, "error", err)
			return errorJSON(c, http.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(b)
	case "json":
		b, err := render.JSON(render.Document(results, on))
		if err != nil {
			s.log.Error("render plans", "session", sess.id, "error", err)
			return errorJSON(c, http.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(b)
	default:
		return errorJSON(c, http.StatusBadRequest, "unknown format "+format)
	}
}
