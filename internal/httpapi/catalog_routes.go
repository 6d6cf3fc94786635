package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

type goalResponse struct {
	catalog.GoalProfile
	Prescription prescription `json:"prescription"`
}

// prescription is what the generator hands out for a goal.
type prescription struct {
	Sets        int `json:"sets"`
	Reps        int `json:"reps"`
	RestSeconds int `json:"rest_seconds"`
	AvgMinutes  int `json:"avg_minutes"`
}

func registerCatalog(app *fiber.App) {
	app.Get("/catalog/equipment", func(c *fiber.Ctx) error {
		return c.JSON(catalog.AllEquipment())
	})

	app.Get("/catalog/goals", func(c *fiber.Ctx) error {
		profiles := catalog.Profiles()
		out := make([]goalResponse, 0, len(profiles))
		for _, p := range profiles {
			sets := workout.Midpoint(p.Sets)
			rest := workout.Midpoint(p.RestSeconds)
			out = append(out, goalResponse{
				GoalProfile: p,
				Prescription: prescription{
					Sets:        sets,
					Reps:        workout.Midpoint(p.Reps),
					RestSeconds: rest,
					AvgMinutes:  workout.ExerciseMinutes(sets, rest),
				},
			})
		}
		return c.JSON(out)
	})
}
