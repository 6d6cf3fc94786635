package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/atombender/go-jsonschema/pkg/types"
	"gopkg.in/yaml.v3"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/id"
	"github.com/aaronromeo/swolecrew/internal/schemas"
)

// Document converts generated results into the exported plan document.
// Goals are reported as resolved, so an unknown goal shows as hypertrophy.
func Document(results []form.Result, on time.Time) schemas.PlansV1Json {
	date := on.Format(time.DateOnly)
	doc := schemas.PlansV1Json{
		GeneratedOn: types.SerializableDate{Time: on},
		Plans:       make([]schemas.PlansV1JsonPlansElem, 0, len(results)),
	}
	for _, r := range results {
		elem := schemas.PlansV1JsonPlansElem{
			UserId:       r.ID,
			Name:         r.Name,
			Goal:         schemas.PlansV1JsonPlansElemGoal(catalog.Profile(r.Goal).Key),
			TotalMinutes: r.Plan.TotalMinutes,
			Exercises:    make([]schemas.PlansV1JsonPlansElemExercisesElem, 0, len(r.Plan.Exercises)),
		}
		seed := make([]string, 0, len(r.Plan.Exercises))
		for i, ex := range r.Plan.Exercises {
			elem.Exercises = append(elem.Exercises, schemas.PlansV1JsonPlansElemExercisesElem{
				Position:    i + 1,
				Ref:         id.ExerciseRef(ex.Equipment, i+1),
				EquipmentId: ex.EquipmentID,
				Equipment:   ex.Equipment,
				Sets:        ex.Sets,
				Reps:        ex.Reps,
				RestSeconds: ex.RestSeconds,
				AvgMinutes:  ex.AvgMinutes,
			})
			seed = append(seed, ex.EquipmentID)
		}
		elem.PlanId = id.PlanID(date, fmt.Sprintf("%d %s", r.ID, r.Name), []byte(strings.Join(seed, ",")))
		doc.Plans = append(doc.Plans, elem)
	}
	return doc
}

// JSON marshals the document and checks it against the plans schema.
func JSON(doc schemas.PlansV1Json) ([]byte, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal plans: %w", err)
	}
	if err := ValidateJSON(b); err != nil {
		return nil, err
	}
	return b, nil
}

// YAML renders the document as YAML. It goes through JSON first so the
// date and field names match the JSON form exactly.
func YAML(doc schemas.PlansV1Json) ([]byte, error) {
	b, err := JSON(doc)
	if err != nil {
		return nil, err
	}
	return jsonToYAML(b)
}

// jsonToYAML converts a JSON document to YAML bytes.
func jsonToYAML(b []byte) ([]byte, error) {
	var v yaml.Node
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("convert plans to yaml: %w", err)
	}
	clearStyle(&v)
	return yaml.Marshal(&v)
}

// clearStyle drops the flow style JSON input decodes with, so the output is block YAML.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
