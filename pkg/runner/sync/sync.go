package sync

import (
	"context"
	"time"

	"github.com/melops-hh/garmin-obsidian-sync/pkg/garmin"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/journal"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/note"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/printers"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/timeutil"
)

// Sync fetches one day's sleep and activity data and prints it and/or
// inserts it into the daily note.
type Sync struct {
	DateToken string
	Print     bool
	Export    bool

	NotesRoot string
	Service   garmin.Service
}

func (s *Sync) Do(ctx context.Context) error {
	date, day, err := timeutil.ResolveDate(s.DateToken, time.Now())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}

	sleep, err := s.Service.SleepData(ctx, date)
	if err != nil {
		return err
	}
	activities, err := s.Service.Activities(ctx, date)
	if err != nil {
		return err
	}

	// Informational only; a partial day still gets printed and exported.
	if sleep == (garmin.DailySleep{}) {
		pp.Notice("no sleep data found for %s", date)
	}
	if len(activities) == 0 {
		pp.Notice("no activities found for %s", date)
	}

	sleepLines := journal.SleepLines(sleep)
	exerciseLines := journal.ExerciseLines(activities)

	if s.Print {
		pp.Title("Sleep " + date)
		pp.SleepSummary(sleepLines)
		pp.Title("Exercise " + date)
		pp.ExerciseLog(exerciseLines)
	}

	if s.Export {
		path, err := note.Path(s.NotesRoot, day)
		if err != nil {
			return err
		}
		if err := note.Update(path, sleepLines, exerciseLines); err != nil {
			return err
		}
		pp.Notice("updated %s", path)
	}

	return nil
}
