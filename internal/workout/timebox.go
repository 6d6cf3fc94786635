package workout

import (
	"math"

	"github.com/aaronromeo/swolecrew/internal/catalog"
)

// SetExecutionSeconds approximates the working time of one set.
const SetExecutionSeconds = 60

// ExerciseMinutes estimates the time spent on one exercise: every set costs its
// execution time plus the rest after it. Rest after the last set is counted too.
func ExerciseMinutes(sets int, restSeconds int) int {
	if sets <= 0 {
		return 0
	}
	if restSeconds < 0 {
		restSeconds = 0
	}
	return roundHalfUp(float64(sets*(SetExecutionSeconds+restSeconds)) / 60)
}

// Midpoint is the arithmetic mean of r rounded half up, so [3,4] gives 4.
func Midpoint(r catalog.Range) int {
	return roundHalfUp(float64(r.Min+r.Max) / 2)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
