package workout

import (
	"math/rand/v2"
	"sync"

	"github.com/aaronromeo/swolecrew/internal/catalog"
)

// Prescription is the work assigned to one exercise slot.
type Prescription struct {
	EquipmentID string `json:"equipment_id"`
	Equipment   string `json:"equipment"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
	AvgMinutes  int    `json:"avg_minutes"`
}

// Plan is the ordered exercise list for one person.
type Plan struct {
	Exercises    []Prescription `json:"exercises"`
	TotalMinutes int            `json:"total_minutes"`
}

// Generator builds randomized plans from an equipment catalog.
// It is safe for concurrent use.
type Generator struct {
	mu        sync.Mutex
	rnd       *rand.Rand
	equipment []catalog.Equipment
}

type GeneratorOption func(*Generator)

// WithRand replaces the random source. Tests pass a seeded source.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rnd = r
	}
}

func WithCatalog(eq []catalog.Equipment) GeneratorOption {
	return func(g *Generator) {
		g.equipment = append([]catalog.Equipment(nil), eq...)
	}
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.equipment == nil {
		g.equipment = catalog.AllEquipment()
	}
	return g
}

// Generate picks min(count, catalog size) distinct pieces of equipment in random
// order and prescribes the goal's midpoint sets, reps and rest for each.
// Unknown goals are treated as hypertrophy. The caller clamps count.
func (g *Generator) Generate(count int, goal catalog.Goal) Plan {
	p := catalog.Profile(goal)
	sets := Midpoint(p.Sets)
	reps := Midpoint(p.Reps)
	rest := Midpoint(p.RestSeconds)
	minutes := ExerciseMinutes(sets, rest)

	picked := g.pick(count)
	plan := Plan{Exercises: make([]Prescription, 0, len(picked))}
	for _, e := range picked {
		plan.Exercises = append(plan.Exercises, Prescription{
			EquipmentID: e.ID,
			Equipment:   e.Name,
			Sets:        sets,
			Reps:        reps,
			RestSeconds: rest,
			AvgMinutes:  minutes,
		})
	}
	plan.TotalMinutes = minutes * len(plan.Exercises)
	return plan
}

func (g *Generator) pick(count int) []catalog.Equipment {
	if count <= 0 {
		return nil
	}
	shuffled := append([]catalog.Equipment(nil), g.equipment...)
	g.mu.Lock()
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	g.mu.Unlock()
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
