package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

type planRequest struct {
	Goal      string          `json:"goal"`
	Exercises json.RawMessage `json:"exercises"`
}

type planResponse struct {
	Goal          catalog.Goal `json:"goal"`
	ExerciseCount int          `json:"exercise_count"`
	Plan          workout.Plan `json:"plan"`
}

// registerPlans exposes the generator without a form session.
func (s *server) registerPlans(app *fiber.App) {
	app.Post("/plans", func(c *fiber.Ctx) error {
		var in planRequest
		if err := json.Unmarshal(c.Body(), &in); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid json: "+err.Error())
		}
		goal := catalog.ParseGoal(in.Goal)
		raw, _ := rawText(in.Exercises)
		n := form.ClampExerciseCount(form.SanitizeDigits(raw))
		return c.JSON(planResponse{Goal: goal, ExerciseCount: n, Plan: s.gen.Generate(n, goal)})
	})
}
