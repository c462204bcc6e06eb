package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

func sampleSession() domain.RollSession {
	started := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return domain.RollSession{
		StartedAt: started,
		EndedAt:   started.Add(time.Second),
		Seed:      1234,
		Rolls: []domain.RollResult{
			{Die1: 3, Die2: 6},
			{Die1: 1, Die2: 1},
		},
	}
}

func TestPrintSessionPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printSession(&buf, sampleSession(), "pretty"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Seed:   1234", "Cycles: 2", "3 + 6 = 9", "1 + 1 = 2", "Face counts"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSessionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printSession(&buf, sampleSession(), "json"); err != nil {
		t.Fatal(err)
	}

	var got domain.RollSession
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json output is not a session: %v", err)
	}
	if got.Seed != 1234 || len(got.Rolls) != 2 {
		t.Errorf("decoded session = %+v", got)
	}
}

func TestPrintSessionUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printSession(&buf, sampleSession(), "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestPrintPinMapPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printPinMap(&buf, domain.DefaultPinMap(), "pretty"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"3, 4, 5", "8, 9, 10", "Buzzer:            6", "A0"} {
		if !strings.Contains(out, want) {
			t.Errorf("pin map output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintPinMapJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printPinMap(&buf, domain.DefaultPinMap(), "json"); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["buzzer"] != float64(6) {
		t.Errorf("buzzer = %v, want 6", got["buzzer"])
	}
}
