package id

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)
var multiDash = regexp.MustCompile(`-+`)

// Slug converts an equipment name to a compact uppercase slug (A–Z0–9–), max 12 chars.
func Slug(name string) string {
	s := strings.ToUpper(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 12 {
		s = s[:12]
		// If we truncated mid-token, cap the last token to at most 2 chars after the dash.
		if i := strings.LastIndex(s, "-"); i > 0 {
			letters := len(s) - (i + 1)
			if letters == 0 {
				s = s[:i]
			} else if letters > 2 {
				s = s[:i+1+2]
			}
		}
	}
	return s
}

func kebab(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// PlanID builds YYYY-MM-DD-<kebab-name>-NN where NN is xxhash(seed)%100.
// The seed is the plan's ordered equipment ids, so the suffix changes with the selection.
func PlanID(dateISO, name string, seed []byte) string {
	h := xxhash.Sum64(seed) % 100
	if n := kebab(name); n != "" {
		return fmt.Sprintf("%s-%s-%02d", dateISO, n, h)
	}
	return fmt.Sprintf("%s-%02d", dateISO, h)
}

// ExerciseRef builds <SLUG>-<position>, e.g. LEG-PRESS-3.
func ExerciseRef(equipmentName string, position int) string {
	return fmt.Sprintf("%s-%d", Slug(equipmentName), position)
}
