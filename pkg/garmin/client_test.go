package garmin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":       "test-token",
			"displayName": "tester",
		})
	})
	for path, h := range handlers {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSleepData(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/wellness-service/wellness/dailySleepData/tester": func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
				t.Errorf("Authorization = %q", got)
			}
			if got := r.URL.Query().Get("date"); got != "2024-05-01" {
				t.Errorf("date = %q", got)
			}
			_, _ = w.Write([]byte(`{
				"dailySleepDTO": {
					"sleepTimeSeconds": 27060,
					"deepSleepSeconds": 5340,
					"sleepScores": {"overall": {"value": 82, "qualifierKey": "GOOD"}}
				}
			}`))
		},
	})

	c := NewClient("user@example.com", "hunter2")
	c.BaseURL = srv.URL

	s, err := c.SleepData(context.Background(), "2024-05-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SleepTimeSeconds != 27060 {
		t.Errorf("SleepTimeSeconds = %v, want 27060", s.SleepTimeSeconds)
	}
	if s.SleepScores.Overall.Value == nil || *s.SleepScores.Overall.Value != 82 {
		t.Errorf("score = %v, want 82", s.SleepScores.Overall.Value)
	}
	if s.SleepScores.Overall.QualifierKey != "GOOD" {
		t.Errorf("qualifier = %q, want GOOD", s.SleepScores.Overall.QualifierKey)
	}
}

func TestSleepDataEmptyDay(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/wellness-service/wellness/dailySleepData/tester": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		},
	})

	c := NewClient("user@example.com", "hunter2")
	c.BaseURL = srv.URL

	s, err := c.SleepData(context.Background(), "2024-05-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SleepTimeSeconds != 0 || s.SleepScores.Overall.Value != nil {
		t.Errorf("expected zero DailySleep, got %+v", s)
	}
}

func TestActivities(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/mobile-gateway/activity/activitiesForDate": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"ActivitiesForDay": {
					"payload": [
						{
							"activityType": {"typeKey": "RUNNING"},
							"activityName": "Morning Run",
							"distance": 5000,
							"duration": 1800,
							"averageHR": 148,
							"averageSpeed": 2.78
						},
						{"activityType": {}}
					]
				}
			}`))
		},
	})

	c := NewClient("user@example.com", "hunter2")
	c.BaseURL = srv.URL

	acts, err := c.Activities(context.Background(), "2024-05-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(acts) != 2 {
		t.Fatalf("len = %d, want 2", len(acts))
	}
	if acts[0].Category() != "running" {
		t.Errorf("Category = %q, want running", acts[0].Category())
	}
	if acts[0].Calories != nil {
		t.Errorf("Calories = %v, want nil", acts[0].Calories)
	}
	if acts[1].Category() != "unknown" {
		t.Errorf("Category = %q, want unknown", acts[1].Category())
	}
	if acts[1].Name() != "Unnamed Activity" {
		t.Errorf("Name = %q, want Unnamed Activity", acts[1].Name())
	}
}

func TestActivitiesMissingContainer(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/mobile-gateway/activity/activitiesForDate": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		},
	})

	c := NewClient("user@example.com", "hunter2")
	c.BaseURL = srv.URL

	if _, err := c.Activities(context.Background(), "2024-05-01"); err == nil {
		t.Fatal("expected error for missing ActivitiesForDay container")
	}
}

func TestAuthFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient("user@example.com", "wrong")
	c.BaseURL = srv.URL

	if _, err := c.SleepData(context.Background(), "2024-05-01"); err == nil {
		t.Fatal("expected authentication error")
	}
}
