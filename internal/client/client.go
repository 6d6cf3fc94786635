// Package client talks to the swolecrew HTTP API. Requests that fail with a
// connection error or a 5xx response are retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/schemas"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

// ErrNotFound is returned when the session (or route) does not exist,
// including sessions the server has expired.
var ErrNotFound = errors.New("not found")

// State mirrors the server's view of a form session.
type State struct {
	ID        string            `json:"id"`
	UserCount string            `json:"user_count"`
	Users     []form.UserConfig `json:"users"`
	HasPlans  bool              `json:"has_plans"`
}

// UserUpdate is a partial user edit. Nil fields are not sent.
type UserUpdate struct {
	Name      *string `json:"name,omitempty"`
	Goal      *string `json:"goal,omitempty"`
	Exercises *string `json:"exercises,omitempty"`
}

// PlanResult is the answer to a one-shot plan request.
type PlanResult struct {
	Goal          catalog.Goal `json:"goal"`
	ExerciseCount int          `json:"exercise_count"`
	Plan          workout.Plan `json:"plan"`
}

type Client struct {
	h    *retryablehttp.Client
	base string
}

type Option func(*Client)

func WithRetries(n int) Option {
	return func(c *Client) {
		c.h.RetryMax = n
	}
}

// WithHTTPClient swaps the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.h.HTTPClient = hc
	}
}

// WithLogger routes retry logging to log. Without it the client is silent.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.h.Logger = log
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	h := retryablehttp.NewClient()
	h.RetryMax = 3
	h.RetryWaitMin = 200 * time.Millisecond
	h.RetryWaitMax = 2 * time.Second
	h.Logger = nil
	// hand the final response back instead of a "giving up" error
	h.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{h: h, base: strings.TrimRight(u.String(), "/")}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) CreateSession(ctx context.Context) (*State, error) {
	var st State
	if err := c.doJSON(ctx, http.MethodPost, "/sessions", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) Session(ctx context.Context, id string) (*State, error) {
	var st State
	if err := c.doJSON(ctx, http.MethodGet, sessionPath(id), nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// SetUserCount sends raw unchanged; the server normalizes it.
func (c *Client) SetUserCount(ctx context.Context, id, raw string) (*State, error) {
	var st State
	body := map[string]string{"value": raw}
	if err := c.doJSON(ctx, http.MethodPut, sessionPath(id)+"/user-count", body, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, userID int, u UserUpdate) (*State, error) {
	var st State
	p := sessionPath(id) + "/users/" + strconv.Itoa(userID)
	if err := c.doJSON(ctx, http.MethodPatch, p, u, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Generate builds plans for every user in the session and returns the plan document.
func (c *Client) Generate(ctx context.Context, id string) (*schemas.PlansV1Json, error) {
	var doc schemas.PlansV1Json
	if err := c.doJSON(ctx, http.MethodPost, sessionPath(id)+"/generate", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Plans fetches the last generated plans rendered server-side as json, yaml or text.
func (c *Client) Plans(ctx context.Context, id, format string) ([]byte, error) {
	p := sessionPath(id) + "/plans?format=" + url.QueryEscape(format)
	return c.do(ctx, http.MethodGet, p, nil)
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, sessionPath(id), nil)
	return err
}

// Plan asks for a single plan without a session.
func (c *Client) Plan(ctx context.Context, goal, exercises string) (*PlanResult, error) {
	var out PlanResult
	body := map[string]string{"goal": goal, "exercises": exercises}
	if err := c.doJSON(ctx, http.MethodPost, "/plans", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func sessionPath(id string) string {
	return "/sessions/" + url.PathEscape(id)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	b, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.h.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode >= 300 {
		msg := apiError(b)
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s %s: %w: %s", method, path, ErrNotFound, msg)
		}
		return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, msg)
	}
	return b, nil
}

// apiError pulls the message out of an {"error": "..."} body.
func apiError(b []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(b, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(b))
}
