package sync

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/melops-hh/garmin-obsidian-sync/pkg/garmin"
)

type stubService struct {
	sleep      garmin.DailySleep
	activities []garmin.Activity
}

func (s *stubService) SleepData(_ context.Context, _ string) (garmin.DailySleep, error) {
	return s.sleep, nil
}

func (s *stubService) Activities(_ context.Context, _ string) ([]garmin.Activity, error) {
	return s.activities, nil
}

func TestSyncExport(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "2024", "05"), 0755); err != nil {
		t.Fatal(err)
	}

	hr := 148.0
	s := &Sync{
		DateToken: "01-05-2024",
		Export:    true,
		NotesRoot: root,
		Service: &stubService{
			sleep: garmin.DailySleep{SleepTimeSeconds: 27060},
			activities: []garmin.Activity{
				{
					ActivityType: garmin.ActivityType{TypeKey: "running"},
					ActivityName: "Morning Run",
					Distance:     5000,
					Duration:     1800,
					AverageHR:    &hr,
					AverageSpeed: 2.78,
				},
			},
		},
	}

	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "2024", "05", "2024-05-01.md"))
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "### Log morning\nlog-sleep-hours:: 7.52h") {
		t.Errorf("sleep block missing: %q", text)
	}
	if !strings.Contains(text, "- [ ] Morning Run #log/exercise/running #distance/5km") {
		t.Errorf("exercise block missing: %q", text)
	}
}

func TestSyncInvalidDate(t *testing.T) {
	s := &Sync{DateToken: "31-02-2024", Print: true, Service: &stubService{}}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected date validation error")
	}
}

func TestSyncExportMissingParent(t *testing.T) {
	s := &Sync{
		DateToken: "01-05-2024",
		Export:    true,
		NotesRoot: filepath.Join(t.TempDir(), "does-not-exist"),
		Service:   &stubService{},
	}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}
