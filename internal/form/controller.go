// Package form holds the state of the multi-user workout form: the per-user
// settings being edited and the plans produced by the last generate action.
//
// Every operation degrades to a default instead of failing. A Controller is not
// safe for concurrent use; callers serialize access.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

const (
	DefaultExercises = "6"
	MinExercises     = 4
	MaxExercises     = 10
	defaultExercises = 6
)

// Planner produces a plan for a clamped exercise count and a goal.
type Planner interface {
	Generate(count int, goal catalog.Goal) workout.Plan
}

// UserConfig is one person's form entry. Exercises keeps the raw text of the
// exercise-count field; it is only interpreted at generation time.
type UserConfig struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Goal      catalog.Goal `json:"goal"`
	Exercises string       `json:"exercises"`
}

// Patch carries the fields to merge into a UserConfig. Nil fields are left alone.
type Patch struct {
	Name      *string
	Goal      *catalog.Goal
	Exercises *string
}

// Result is a user's settings at generation time plus the plan built for them.
type Result struct {
	UserConfig
	Plan workout.Plan `json:"plan"`
}

type Controller struct {
	planner   Planner
	maxUsers  int
	countText string
	users     []UserConfig
	plans     []Result
}

type Option func(*Controller)

// WithMaxUsers caps the user count. Larger requests are clamped. 0 disables the cap.
func WithMaxUsers(n int) Option {
	return func(c *Controller) {
		c.maxUsers = n
	}
}

// NewController starts with a single default user and no plans.
func NewController(planner Planner, opts ...Option) *Controller {
	c := &Controller{planner: planner}
	for _, opt := range opts {
		opt(c)
	}
	c.SetUserCount("1")
	return c
}

func newUser(id int) UserConfig {
	return UserConfig{
		ID:        id,
		Name:      fmt.Sprintf("User %d", id),
		Goal:      catalog.Hypertrophy,
		Exercises: DefaultExercises,
	}
}

// SetUserCount resizes the user list to the integer in raw, floored at 1;
// text that does not start with a number counts as 1.
// Growing appends default users with the next ids; shrinking drops the highest
// ids. Surviving users keep their ids and edits. It returns the new count.
func (c *Controller) SetUserCount(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n < 1 {
		n = 1
	}
	if c.maxUsers > 0 && n > c.maxUsers {
		n = c.maxUsers
	}
	c.countText = strconv.Itoa(n)

	switch {
	case n > len(c.users):
		for id := len(c.users) + 1; id <= n; id++ {
			c.users = append(c.users, newUser(id))
		}
	case n < len(c.users):
		c.users = c.users[:n:n]
	}
	return n
}

// UserCountText is the normalized value of the user-count field.
func (c *Controller) UserCountText() string {
	return c.countText
}

// UpdateUser merges p into the user with the given id. Unknown ids are ignored.
// Values are stored as given; sanitize exercise text with SanitizeDigits first.
func (c *Controller) UpdateUser(id int, p Patch) {
	for i := range c.users {
		if c.users[i].ID != id {
			continue
		}
		if p.Name != nil {
			c.users[i].Name = *p.Name
		}
		if p.Goal != nil {
			c.users[i].Goal = *p.Goal
		}
		if p.Exercises != nil {
			c.users[i].Exercises = *p.Exercises
		}
		return
	}
}

// GeneratePlans builds a plan for every user and replaces the previous results.
func (c *Controller) GeneratePlans() []Result {
	out := make([]Result, 0, len(c.users))
	for _, u := range c.users {
		out = append(out, Result{
			UserConfig: u,
			Plan:       c.planner.Generate(ClampExerciseCount(u.Exercises), u.Goal),
		})
	}
	c.plans = out
	return c.Plans()
}

// Users returns a copy of the current user list.
func (c *Controller) Users() []UserConfig {
	return append([]UserConfig(nil), c.users...)
}

// Plans returns a copy of the last generated results, empty before the first run.
func (c *Controller) Plans() []Result {
	return append([]Result(nil), c.plans...)
}

func (c *Controller) HasPlans() bool {
	return len(c.plans) > 0
}

// SanitizeDigits strips everything but ASCII digits, e.g. "6a7" -> "67".
func SanitizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ClampExerciseCount parses raw (falling back to 6) and clamps it to [4, 10].
func ClampExerciseCount(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok {
		n = defaultExercises
	}
	return min(max(n, MinExercises), MaxExercises)
}

// parseLeadingInt reads an optionally signed integer prefix of s, ignoring
// surrounding whitespace and any trailing text: "12 users" -> 12. Values out of
// int range saturate.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}
