package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/render"
	"github.com/aaronromeo/swolecrew/internal/schemas"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

func newHandlers() *handlers {
	return &handlers{
		gen: workout.NewGenerator(workout.WithRand(rand.New(rand.NewPCG(21, 22)))),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: func() time.Time { return time.Date(2025, 8, 9, 8, 0, 0, 0, time.UTC) },
	}
}

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestGeneratePlans_JSON(t *testing.T) {
	h := newHandlers()
	res, err := h.generatePlans(context.Background(), call(map[string]any{
		"users": []any{
			map[string]any{"name": "Ana", "goal": "strength", "exercises": "5"},
			map[string]any{"goal": "endurance", "exercises": 12},
			map[string]any{},
		},
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, textOf(t, res))

	body := textOf(t, res)
	require.NoError(t, render.ValidateJSON([]byte(body)))

	var doc schemas.PlansV1Json
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	require.Len(t, doc.Plans, 3)

	assert.Equal(t, "Ana", doc.Plans[0].Name)
	assert.Len(t, doc.Plans[0].Exercises, 5)
	assert.Equal(t, 90, doc.Plans[0].TotalMinutes)

	assert.Equal(t, "User 2", doc.Plans[1].Name)
	assert.Len(t, doc.Plans[1].Exercises, 10)
	assert.Equal(t, 50, doc.Plans[1].TotalMinutes)

	assert.Equal(t, schemas.PlansV1JsonPlansElemGoalHypertrophy, doc.Plans[2].Goal)
	assert.Len(t, doc.Plans[2].Exercises, 6)
	assert.Equal(t, "2025-08-09", doc.GeneratedOn.Format(time.DateOnly))
}

func TestGeneratePlans_Formats(t *testing.T) {
	h := newHandlers()
	users := []any{map[string]any{"name": "Bo", "goal": "Endurance", "exercises": "4"}}

	res, err := h.generatePlans(context.Background(), call(map[string]any{"users": users, "format": "yaml"}))
	require.NoError(t, err)
	require.NoError(t, render.ValidateYAML([]byte(textOf(t, res))))

	res, err = h.generatePlans(context.Background(), call(map[string]any{"users": users, "format": "text"}))
	require.NoError(t, err)
	txt := textOf(t, res)
	assert.Contains(t, txt, "Bo — ENDURANCE")
	assert.Contains(t, txt, "Total estimated time: 20 min")

	res, err = h.generatePlans(context.Background(), call(map[string]any{"users": users, "format": "csv"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGeneratePlans_NoUsersYieldsOneDefault(t *testing.T) {
	res, err := newHandlers().generatePlans(context.Background(), call(map[string]any{"users": []any{}}))
	require.NoError(t, err)
	var doc schemas.PlansV1Json
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &doc))
	require.Len(t, doc.Plans, 1)
	assert.Equal(t, "User 1", doc.Plans[0].Name)
}

func TestGeneratePlans_BadArguments(t *testing.T) {
	res, err := newHandlers().generatePlans(context.Background(), call(map[string]any{"users": "everyone"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGeneratePlan(t *testing.T) {
	cases := []struct {
		args  map[string]any
		goal  catalog.Goal
		count int
	}{
		{map[string]any{"goal": "strength", "exercises": "7"}, catalog.Strength, 7},
		{map[string]any{"goal": "yoga", "exercises": 1}, catalog.Hypertrophy, 4},
		{map[string]any{}, catalog.Hypertrophy, 6},
	}
	h := newHandlers()
	for _, tc := range cases {
		res, err := h.generatePlan(context.Background(), call(tc.args))
		require.NoError(t, err)
		var out planResult
		require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &out))
		assert.Equal(t, tc.goal, out.Goal, "%v", tc.args)
		assert.Equal(t, tc.count, out.ExerciseCount, "%v", tc.args)
		assert.Len(t, out.Plan.Exercises, tc.count, "%v", tc.args)
	}
}

func TestListTools(t *testing.T) {
	h := newHandlers()

	res, err := h.listEquipment(context.Background(), call(nil))
	require.NoError(t, err)
	var eq []catalog.Equipment
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &eq))
	assert.Len(t, eq, 13)

	res, err = h.listGoals(context.Background(), call(nil))
	require.NoError(t, err)
	body := textOf(t, res)
	for _, g := range catalog.Goals() {
		assert.True(t, strings.Contains(body, string(g)), "missing goal %s", g)
	}
}

func TestNew_RegistersTools(t *testing.T) {
	s := New(workout.NewGenerator(), "test", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, s)
	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	for _, name := range []string{"generate_plans", "generate_plan", "list_equipment", "list_goals"} {
		assert.Contains(t, string(b), `"`+name+`"`)
	}
}
