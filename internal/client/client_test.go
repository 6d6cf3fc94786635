package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/config"
	"github.com/aaronromeo/swolecrew/internal/httpapi"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

func ptr[T any](v T) *T { return &v }

func newAPI(t *testing.T) *Client {
	t.Helper()
	cfg := &config.Config{MaxUsers: 8, SessionTTL: time.Hour}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := workout.NewGenerator(workout.WithRand(rand.New(rand.NewPCG(11, 12))))
	app := httpapi.NewServer(cfg, logger, httpapi.WithGenerator(gen))

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, WithRetries(0))
	require.NoError(t, err)
	return c
}

func TestClient_FormRoundTrip(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	st, err := c.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, st.ID)
	assert.Equal(t, "1", st.UserCount)

	st, err = c.SetUserCount(ctx, st.ID, "3 friends")
	require.NoError(t, err)
	assert.Len(t, st.Users, 3)

	st, err = c.UpdateUser(ctx, st.ID, 3, UserUpdate{
		Name:      ptr("Cid"),
		Goal:      ptr("strength"),
		Exercises: ptr("5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cid", st.Users[2].Name)
	assert.Equal(t, catalog.Strength, st.Users[2].Goal)
	assert.False(t, st.HasPlans)

	doc, err := c.Generate(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, doc.Plans, 3)
	cid := doc.Plans[2]
	assert.Equal(t, "Cid", cid.Name)
	assert.Len(t, cid.Exercises, 5)
	assert.Equal(t, 90, cid.TotalMinutes)

	got, err := c.Session(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, got.HasPlans)

	text, err := c.Plans(ctx, st.ID, "text")
	require.NoError(t, err)
	assert.Contains(t, string(text), "Cid — STRENGTH")

	yml, err := c.Plans(ctx, st.ID, "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(yml), "generated_on:")

	require.NoError(t, c.DeleteSession(ctx, st.ID))
	_, err = c.Session(ctx, st.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Plan(t *testing.T) {
	c := newAPI(t)
	res, err := c.Plan(context.Background(), "endurance", "4")
	require.NoError(t, err)
	assert.Equal(t, catalog.Endurance, res.Goal)
	assert.Equal(t, 4, res.ExerciseCount)
	assert.Equal(t, 20, res.Plan.TotalMinutes)
}

func TestClient_BadFormatIsAnError(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()
	st, err := c.CreateSession(ctx)
	require.NoError(t, err)

	_, err = c.Plans(ctx, st.ID, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "unknown format xml")
}

type fixtureTransport struct {
	status int
	body   []byte
	calls  int
}

func (ft *fixtureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ft.calls++
	return &http.Response{
		StatusCode: ft.status,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewReader(ft.body)),
		Request:    req,
	}, nil
}

func TestClient_RetriesServerErrors(t *testing.T) {
	ft := &fixtureTransport{status: http.StatusServiceUnavailable, body: []byte(`{"error":"busy"}`)}
	c, err := New("http://swolecrew.test", WithRetries(2), WithHTTPClient(&http.Client{Transport: ft}))
	require.NoError(t, err)
	c.h.RetryWaitMin = time.Millisecond
	c.h.RetryWaitMax = time.Millisecond

	_, err = c.CreateSession(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, ft.calls)
	assert.Contains(t, err.Error(), "busy")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestClient_NotFoundIsNotRetried(t *testing.T) {
	ft := &fixtureTransport{status: http.StatusNotFound, body: []byte(`{"error":"session not found"}`)}
	c, err := New("http://swolecrew.test/", WithRetries(3), WithHTTPClient(&http.Client{Transport: ft}))
	require.NoError(t, err)

	_, err = c.Session(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, ft.calls)
}

func TestClient_MalformedBody(t *testing.T) {
	ft := &fixtureTransport{status: http.StatusOK, body: []byte(`not json`)}
	c, err := New("http://swolecrew.test", WithRetries(0), WithHTTPClient(&http.Client{Transport: ft}))
	require.NoError(t, err)

	_, err = c.CreateSession(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "decode response"))
}

func TestNew_RejectsBadURL(t *testing.T) {
	for _, raw := range []string{"localhost:8080", "ftp://x", "://"} {
		_, err := New(raw)
		assert.Error(t, err, "New(%q)", raw)
	}
}
