package journal

import (
	"strings"

	"github.com/melops-hh/garmin-obsidian-sync/pkg/format"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/garmin"
)

// tagSpec renders one hash tag of an exercise entry.
type tagSpec struct {
	name  string
	unit  string
	value func(a garmin.Activity) string
}

var (
	distanceTag = tagSpec{"distance", "km", func(a garmin.Activity) string {
		return format.Tag(a.Distance / 1000)
	}}
	durationTag = tagSpec{"duration", "min", func(a garmin.Activity) string {
		return format.Tag(a.Duration / 60)
	}}
	avgPaceTag = tagSpec{"avgPace", "min/km", func(a garmin.Activity) string {
		if a.AverageSpeed <= 0 {
			return format.NA
		}
		// m/s to min/km
		return format.Tag(1000 / (a.AverageSpeed * 60))
	}}
	avgHRTag = tagSpec{"avgHR", "bpm", func(a garmin.Activity) string {
		return format.OptTag(a.AverageHR)
	}}
	caloriesTag = tagSpec{"calories", "", func(a garmin.Activity) string {
		return format.OptTag(a.Calories)
	}}
	setsTag = tagSpec{"sets", "", func(a garmin.Activity) string {
		return format.OptTag(a.ActiveSets)
	}}
)

// categoryTags maps an activity category to its ordered tag set. Adding a
// category is a table change. Unlisted categories fall back to defaultTags.
var categoryTags = map[string][]tagSpec{
	"running":           {distanceTag, durationTag, avgPaceTag, avgHRTag, caloriesTag},
	"lacrosse":          {distanceTag, durationTag, avgHRTag, caloriesTag},
	"yoga":              {durationTag, avgHRTag, caloriesTag},
	"strength_training": {setsTag, durationTag, avgHRTag, caloriesTag},
}

var defaultTags = []tagSpec{durationTag, caloriesTag}

// ExerciseLines renders one checklist entry per activity, preserving the
// order the service returned them in.
func ExerciseLines(activities []garmin.Activity) []string {
	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		lines = append(lines, exerciseEntry(a))
	}
	return lines
}

func exerciseEntry(a garmin.Activity) string {
	category := a.Category()
	specs, ok := categoryTags[category]
	if !ok {
		specs = defaultTags
	}

	var b strings.Builder
	b.WriteString(format.IsoClock(a.StartTimeGMT))
	b.WriteString("\n- [ ] ")
	b.WriteString(a.Name())
	b.WriteString(" #log/exercise/")
	b.WriteString(category)
	for _, s := range specs {
		b.WriteString(" #")
		b.WriteString(s.name)
		b.WriteString("/")
		b.WriteString(s.value(a))
		b.WriteString(s.unit)
	}
	return b.String()
}
