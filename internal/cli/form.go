package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/client"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/render"
)

// View is what the REPL shows for the form.
type View struct {
	UserCount string
	Users     []form.UserConfig
	HasPlans  bool
}

// Edit is a partial user edit as typed at the prompt. Nil fields are left alone.
type Edit struct {
	Name      *string
	Goal      *string
	Exercises *string
}

// Form is the command surface the REPL drives. The local form runs the
// controller in-process; the remote form drives a server session.
type Form interface {
	SetUserCount(ctx context.Context, raw string) error
	UpdateUser(ctx context.Context, id int, e Edit) error
	Generate(ctx context.Context) error
	View(ctx context.Context) (View, error)
	Plans(ctx context.Context, format string) ([]byte, error)
}

type localForm struct {
	c           *form.Controller
	now         func() time.Time
	generatedAt time.Time
}

func NewLocalForm(c *form.Controller) Form {
	return &localForm{c: c, now: time.Now}
}

func (l *localForm) SetUserCount(_ context.Context, raw string) error {
	l.c.SetUserCount(raw)
	return nil
}

func (l *localForm) UpdateUser(_ context.Context, id int, e Edit) error {
	var p form.Patch
	p.Name = e.Name
	if e.Goal != nil {
		g := catalog.ParseGoal(*e.Goal)
		p.Goal = &g
	}
	if e.Exercises != nil {
		digits := form.SanitizeDigits(*e.Exercises)
		p.Exercises = &digits
	}
	l.c.UpdateUser(id, p)
	return nil
}

func (l *localForm) Generate(_ context.Context) error {
	l.c.GeneratePlans()
	l.generatedAt = l.now()
	return nil
}

func (l *localForm) View(_ context.Context) (View, error) {
	return View{UserCount: l.c.UserCountText(), Users: l.c.Users(), HasPlans: l.c.HasPlans()}, nil
}

func (l *localForm) Plans(_ context.Context, format string) ([]byte, error) {
	on := l.generatedAt
	if on.IsZero() {
		on = l.now()
	}
	results := l.c.Plans()
	switch strings.ToLower(format) {
	case "text":
		var buf bytes.Buffer
		if err := render.Text(&buf, results); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		return render.JSON(render.Document(results, on))
	case "yaml":
		return render.YAML(render.Document(results, on))
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// RemoteForm drives a form session on a swolecrew server.
type RemoteForm struct {
	c  *client.Client
	id string
}

// NewRemoteForm opens a fresh session on the server behind c.
func NewRemoteForm(ctx context.Context, c *client.Client) (*RemoteForm, error) {
	st, err := c.CreateSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &RemoteForm{c: c, id: st.ID}, nil
}

func (r *RemoteForm) SetUserCount(ctx context.Context, raw string) error {
	_, err := r.c.SetUserCount(ctx, r.id, raw)
	return err
}

func (r *RemoteForm) UpdateUser(ctx context.Context, id int, e Edit) error {
	_, err := r.c.UpdateUser(ctx, r.id, id, client.UserUpdate(e))
	return err
}

func (r *RemoteForm) Generate(ctx context.Context) error {
	_, err := r.c.Generate(ctx, r.id)
	return err
}

func (r *RemoteForm) View(ctx context.Context) (View, error) {
	st, err := r.c.Session(ctx, r.id)
	if err != nil {
		return View{}, err
	}
	return View{UserCount: st.UserCount, Users: st.Users, HasPlans: st.HasPlans}, nil
}

func (r *RemoteForm) Plans(ctx context.Context, format string) ([]byte, error) {
	return r.c.Plans(ctx, r.id, format)
}

// Close drops the server session.
func (r *RemoteForm) Close(ctx context.Context) error {
	return r.c.DeleteSession(ctx, r.id)
}
