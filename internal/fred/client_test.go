package fred

import (
	"strings"
	"testing"
)

const observationsFixture = `{
	"realtime_start": "2024-06-01",
	"realtime_end": "2024-06-01",
	"observation_start": "2024-01-01",
	"observation_end": "2024-01-05",
	"units": "lin",
	"count": 4,
	"observations": [
		{"realtime_start": "2024-06-01", "realtime_end": "2024-06-01", "date": "2024-01-02", "value": "4.02"},
		{"realtime_start": "2024-06-01", "realtime_end": "2024-06-01", "date": "2024-01-03", "value": "4.08"},
		{"realtime_start": "2024-06-01", "realtime_end": "2024-06-01", "date": "2024-01-04", "value": "."},
		{"realtime_start": "2024-06-01", "realtime_end": "2024-06-01", "date": "2024-01-05", "value": "3.99"}
	]
}`

func TestParseObservations(t *testing.T) {
	obs, err := parseObservations(strings.NewReader(observationsFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs) != 4 {
		t.Fatalf("expected 4 observations, got %d", len(obs))
	}
	first := obs[0]
	if first.Date.Format("2006-01-02") != "2024-01-02" {
		t.Errorf("unexpected first date: %v", first.Date)
	}
	if first.Value == nil || *first.Value != 4.02 {
		t.Errorf("unexpected first value: %v", first.Value)
	}
	// "." marks a missing observation and must not become a number.
	if obs[2].Value != nil {
		t.Errorf("expected nil value for '.', got %v", *obs[2].Value)
	}
	if obs[3].Value == nil || *obs[3].Value != 3.99 {
		t.Errorf("unexpected last value: %v", obs[3].Value)
	}
}

func TestParseObservations_Empty(t *testing.T) {
	obs, err := parseObservations(strings.NewReader(`{"observations": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs) != 0 {
		t.Errorf("expected no observations, got %d", len(obs))
	}
}

func TestParseObservations_BadValue(t *testing.T) {
	payload := `{"observations": [{"date": "2024-01-02", "value": "n/a"}]}`
	if _, err := parseObservations(strings.NewReader(payload)); err == nil {
		t.Error("expected error for unparseable value")
	}
}

func TestParseObservations_BadDate(t *testing.T) {
	payload := `{"observations": [{"date": "01/02/2024", "value": "4.0"}]}`
	if _, err := parseObservations(strings.NewReader(payload)); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestParseInfo(t *testing.T) {
	payload := `{
		"realtime_start": "2024-06-01",
		"seriess": [
			{"id": "UNRATE", "title": "Unemployment Rate", "frequency": "Monthly", "units": "Percent"}
		]
	}`
	info, err := parseInfo(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ID != "UNRATE" || info.Frequency != "Monthly" || info.Units != "Percent" {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestParseInfo_Empty(t *testing.T) {
	if _, err := parseInfo(strings.NewReader(`{"seriess": []}`)); err == nil {
		t.Error("expected error for empty series list")
	}
}
