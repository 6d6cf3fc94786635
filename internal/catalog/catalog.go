package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/equipment.yaml
var equipmentYAML []byte

//go:embed data/goals.yaml
var goalsYAML []byte

// Equipment is a named piece of gym apparatus; one per exercise slot.
type Equipment struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Goal is a training objective key.
type Goal string

const (
	Hypertrophy Goal = "hypertrophy"
	Strength    Goal = "strength"
	Endurance   Goal = "endurance"
)

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// UnmarshalYAML reads a range written as a two element sequence, e.g. [3, 4].
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: range needs exactly 2 values, got %d", node.Line, len(pair))
	}
	if pair[0] > pair[1] {
		return fmt.Errorf("line %d: range min %d > max %d", node.Line, pair[0], pair[1])
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// GoalProfile holds the prescription ranges for one goal.
type GoalProfile struct {
	Key         Goal   `yaml:"key" json:"key"`
	Title       string `yaml:"title" json:"title"`
	Sets        Range  `yaml:"sets" json:"sets"`
	Reps        Range  `yaml:"reps" json:"reps"`
	RestSeconds Range  `yaml:"rest_seconds" json:"rest_seconds"`
}

type equipmentFile struct {
	Equipment []Equipment `yaml:"equipment"`
}

type goalsFile struct {
	Goals []GoalProfile `yaml:"goals"`
}

var (
	equipment []Equipment
	goals     []GoalProfile
	profiles  map[Goal]GoalProfile
)

func init() {
	var err error
	equipment, err = parseEquipment(equipmentYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	goals, err = parseGoals(goalsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	profiles = make(map[Goal]GoalProfile, len(goals))
	for _, g := range goals {
		profiles[g.Key] = g
	}
	if _, ok := profiles[Hypertrophy]; !ok {
		panic("catalog: goals.yaml has no hypertrophy profile")
	}
}

func parseEquipment(b []byte) ([]Equipment, error) {
	var f equipmentFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse equipment: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Equipment))
	for _, e := range f.Equipment {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("parse equipment: entry %+v is missing id or name", e)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("parse equipment: duplicate id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return f.Equipment, nil
}

func parseGoals(b []byte) ([]GoalProfile, error) {
	var f goalsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse goals: %w", err)
	}
	return f.Goals, nil
}

// AllEquipment returns a copy of the catalog in display order.
func AllEquipment() []Equipment {
	out := make([]Equipment, len(equipment))
	copy(out, equipment)
	return out
}

// Goals returns the known goal keys in display order.
func Goals() []Goal {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		out = append(out, g.Key)
	}
	return out
}

// Profiles returns every goal profile in display order.
func Profiles() []GoalProfile {
	out := make([]GoalProfile, len(goals))
	copy(out, goals)
	return out
}

// Profile resolves a goal to its ranges. Unknown goals get the hypertrophy profile.
func Profile(g Goal) GoalProfile {
	if p, ok := profiles[g]; ok {
		return p
	}
	return profiles[Hypertrophy]
}

// ParseGoal normalizes s to a known goal, falling back to hypertrophy.
func ParseGoal(s string) Goal {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	if g.Known() {
		return g
	}
	return Hypertrophy
}

// Known reports whether g has its own profile.
func (g Goal) Known() bool {
	_, ok := profiles[g]
	return ok
}

// Title is the display label, e.g. "Hypertrophy".
func (g Goal) Title() string {
	return Profile(g).Title
}
