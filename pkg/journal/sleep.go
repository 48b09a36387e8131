// Package journal builds the note-ready text blocks from decoded Garmin
// records.
package journal

import (
	"fmt"

	"github.com/melops-hh/garmin-obsidian-sync/pkg/format"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/garmin"
)

// SleepLines renders the fixed seven-line sleep block. Missing fields
// degrade to placeholders; the builder never fails.
func SleepLines(s garmin.DailySleep) []string {
	qualifier := s.SleepScores.Overall.QualifierKey
	if qualifier == "" {
		qualifier = format.NA
	}

	return []string{
		"log-sleep-hours:: " + format.Hours(s.SleepTimeSeconds),
		fmt.Sprintf("log-sleep-score:: %s (%s)", format.OptTag(s.SleepScores.Overall.Value), qualifier),
		"log-sleep-deep:: " + format.Hours(s.DeepSleepSeconds),
		"log-sleep-light:: " + format.Hours(s.LightSleepSeconds),
		"log-sleep-rem:: " + format.Hours(s.RemSleepSeconds),
		"log-bed-time:: " + format.Clock(s.SleepStartTimestampLocal),
		"log-wake-up-time:: " + format.Clock(s.SleepEndTimestampLocal),
	}
}
