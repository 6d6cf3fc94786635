package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/client"
	"github.com/aaronromeo/swolecrew/internal/config"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/httpapi"
	"github.com/aaronromeo/swolecrew/internal/schemas"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

// captureOutput swaps the print seams for a buffer for the duration of the test.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var out strings.Builder
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&out, a...) }
	printFn = func(a ...any) (int, error) { return fmt.Fprint(&out, a...) }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &out
}

func script(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
}

func seededController() *form.Controller {
	gen := workout.NewGenerator(workout.WithRand(rand.New(rand.NewPCG(3, 4))))
	return form.NewController(gen, form.WithMaxUsers(6))
}

func TestRunREPL_LocalForm(t *testing.T) {
	out := captureOutput(t)
	ctrl := seededController()

	runREPL(context.Background(), NewLocalForm(ctrl), "text", false, script(
		"users 2",
		"name 1 Ana Maria",
		"goal 2 Strength",
		"exercises 2 1x2",
		"exercises 1 4",
		"",
		"generate",
		"exit",
		"users 5",
	))

	users := ctrl.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "Ana Maria", users[0].Name)
	assert.Equal(t, catalog.Strength, users[1].Goal)
	assert.Equal(t, "12", users[1].Exercises)

	plans := ctrl.Plans()
	require.Len(t, plans, 2)
	assert.Len(t, plans[0].Plan.Exercises, 4)
	assert.Len(t, plans[1].Plan.Exercises, 10)

	s := out.String()
	assert.Contains(t, s, "Users: 2")
	assert.Contains(t, s, "Ana Maria — HYPERTROPHY")
	assert.Contains(t, s, "Total estimated time: 180 min")
	assert.Contains(t, s, "Bye!")
	assert.NotContains(t, s, "swolecrew> ")
}

func TestRunREPL_InputErrors(t *testing.T) {
	out := captureOutput(t)
	ctrl := seededController()

	runREPL(context.Background(), NewLocalForm(ctrl), "text", true, script(
		"users",
		"name",
		"goal x hypertrophy",
		"goal 1 cardio",
		"dance",
		"plans",
		"quit",
	))

	s := out.String()
	assert.Contains(t, s, "usage: users N")
	assert.Contains(t, s, "usage: name ID VALUE")
	assert.Contains(t, s, "user id must be a number: x")
	assert.Contains(t, s, `unknown goal "cardio"; pick one of hypertrophy, strength, endurance`)
	assert.Contains(t, s, "Unknown command: dance")
	assert.Contains(t, s, "No plans generated yet.")
	assert.Contains(t, s, "swolecrew> ")
	assert.Equal(t, catalog.Hypertrophy, ctrl.Users()[0].Goal)
}

func TestRunREPL_HelpAndEOF(t *testing.T) {
	out := captureOutput(t)
	runREPL(context.Background(), NewLocalForm(seededController()), "text", false, script("help"))
	assert.Contains(t, out.String(), "exercises ID N")
}

type failingForm struct{ Form }

func (failingForm) View(context.Context) (View, error) { return View{}, errors.New("server away") }

func TestRunREPL_ErrorsDoNotStopTheLoop(t *testing.T) {
	out := captureOutput(t)
	runREPL(context.Background(), failingForm{NewLocalForm(seededController())}, "text", false, script(
		"show",
		"users 3",
		"exit",
	))
	assert.Equal(t, 2, strings.Count(out.String(), "error: server away"))
	assert.Contains(t, out.String(), "Bye!")
}

func TestLocalForm_Plans(t *testing.T) {
	lf := NewLocalForm(seededController()).(*localForm)
	lf.now = func() time.Time { return time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	require.NoError(t, lf.UpdateUser(ctx, 1, Edit{Goal: ptr("ENDURANCE"), Exercises: ptr("4 please")}))
	require.NoError(t, lf.Generate(ctx))

	b, err := lf.Plans(ctx, "json")
	require.NoError(t, err)
	var doc schemas.PlansV1Json
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Len(t, doc.Plans, 1)
	assert.Equal(t, 20, doc.Plans[0].TotalMinutes)
	assert.Equal(t, "2025-08-09", doc.GeneratedOn.Format(time.DateOnly))

	y, err := lf.Plans(ctx, "YAML")
	require.NoError(t, err)
	assert.Contains(t, string(y), "goal: endurance")

	_, err = lf.Plans(ctx, "csv")
	assert.Error(t, err)
}

func TestRemoteForm(t *testing.T) {
	cfg := &config.Config{MaxUsers: 4, SessionTTL: time.Hour}
	gen := workout.NewGenerator(workout.WithRand(rand.New(rand.NewPCG(5, 6))))
	app := httpapi.NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), httpapi.WithGenerator(gen))
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, client.WithRetries(0))
	require.NoError(t, err)
	ctx := context.Background()
	rf, err := NewRemoteForm(ctx, c)
	require.NoError(t, err)

	out := captureOutput(t)
	runREPL(ctx, rf, "text", false, script(
		"users 9",
		"name 4 Dee",
		"goal 4 endurance",
		"generate",
	))

	v, err := rf.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4", v.UserCount)
	assert.Equal(t, "Dee", v.Users[3].Name)
	assert.True(t, v.HasPlans)
	assert.Contains(t, out.String(), "Dee — ENDURANCE")

	require.NoError(t, rf.Close(ctx))
	_, err = rf.View(ctx)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]string{"text": "text", " JSON ": "json", "yaml": "yaml"} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }
