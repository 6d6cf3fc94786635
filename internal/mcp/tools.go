package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/render"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

// --- Tool definitions ---

var toolGeneratePlans = mcp.NewTool("generate_plans",
	mcp.WithDescription("Build one workout plan per person. Each user gets distinct machines in random order with the sets, reps and rest of their goal. Returns the plan document."),
	mcp.WithArray("users", mcp.Required(),
		mcp.Description("People training, in order. Missing fields take defaults: name 'User N', goal hypertrophy, 6 exercises."),
		mcp.Items(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":      map[string]any{"type": "string"},
				"goal":      map[string]any{"type": "string", "enum": []string{"hypertrophy", "strength", "endurance"}},
				"exercises": map[string]any{"type": []string{"string", "integer"}, "description": "Exercise count, clamped to 4-10"},
			},
		}),
	),
	mcp.WithString("format", mcp.Description("Output format. Defaults to json."), mcp.Enum("json", "yaml", "text")),
)

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Build a single workout plan for a goal without a user list."),
	mcp.WithString("goal", mcp.Description("Training goal. Unknown values fall back to hypertrophy."), mcp.Enum("hypertrophy", "strength", "endurance")),
	mcp.WithString("exercises", mcp.Description("Exercise count, clamped to 4-10. Defaults to 6.")),
)

var toolListEquipment = mcp.NewTool("list_equipment",
	mcp.WithDescription("List the gym equipment plans are drawn from."),
)

var toolListGoals = mcp.NewTool("list_goals",
	mcp.WithDescription("List the training goals with their set, rep and rest ranges."),
)

// --- Tool handlers ---

type userArg struct {
	Name      string          `json:"name"`
	Goal      string          `json:"goal"`
	Exercises json.RawMessage `json:"exercises"`
}

type generatePlansArgs struct {
	Users  []userArg `json:"users"`
	Format string    `json:"format"`
}

func (h *handlers) generatePlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args generatePlansArgs
	if err := req.BindArguments(&args); err != nil {
		return mcp.NewToolResultError("invalid arguments: " + err.Error()), nil
	}

	c := form.NewController(h.gen, form.WithMaxUsers(maxUsers))
	c.SetUserCount(strconv.Itoa(len(args.Users)))
	for i, u := range args.Users {
		var p form.Patch
		if name := strings.TrimSpace(u.Name); name != "" {
			p.Name = &name
		}
		if u.Goal != "" {
			g := catalog.ParseGoal(u.Goal)
			p.Goal = &g
		}
		if raw, ok := rawText(u.Exercises); ok {
			digits := form.SanitizeDigits(raw)
			p.Exercises = &digits
		}
		c.UpdateUser(i+1, p)
	}
	results := c.GeneratePlans()
	doc := render.Document(results, h.now())

	switch strings.ToLower(args.Format) {
	case "", "json":
		b, err := render.JSON(doc)
		if err != nil {
			h.log.Error("mcp generate_plans", "error", err)
			return mcp.NewToolResultError("render failed: " + err.Error()), nil
		}
		return mcp.NewToolResultText(string(b)), nil
	case "yaml":
		b, err := render.YAML(doc)
		if err != nil {
			h.log.Error("mcp generate_plans", "error", err)
			return mcp.NewToolResultError("render failed: " + err.Error()), nil
		}
		return mcp.NewToolResultText(string(b)), nil
	case "text":
		var buf bytes.Buffer
		if err := render.Text(&buf, results); err != nil {
			return mcp.NewToolResultError("render failed: " + err.Error()), nil
		}
		return mcp.NewToolResultText(buf.String()), nil
	default:
		return mcp.NewToolResultError("unknown format " + args.Format), nil
	}
}

type planResult struct {
	Goal          catalog.Goal `json:"goal"`
	ExerciseCount int          `json:"exercise_count"`
	Plan          workout.Plan `json:"plan"`
}

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Goal      string          `json:"goal"`
		Exercises json.RawMessage `json:"exercises"`
	}
	if err := req.BindArguments(&args); err != nil {
		return mcp.NewToolResultError("invalid arguments: " + err.Error()), nil
	}
	goal := catalog.ParseGoal(args.Goal)
	raw, _ := rawText(args.Exercises)
	n := form.ClampExerciseCount(form.SanitizeDigits(raw))

	result, err := mcp.NewToolResultJSON(planResult{Goal: goal, ExerciseCount: n, Plan: h.gen.Generate(n, goal)})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listEquipment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(catalog.AllEquipment())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listGoals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(catalog.Profiles())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// rawText accepts a JSON string or number and returns its text.
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
