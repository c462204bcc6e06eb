package rollstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

func TestSaveSessionWritesArtifact(t *testing.T) {
	root := t.TempDir()
	started := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	store := NewJSONStore(root)
	id, err := store.SaveSession(domain.RollSession{
		StartedAt: started,
		EndedAt:   started.Add(5 * time.Second),
		Seed:      42,
		Rolls:     []domain.RollResult{{Die1: 3, Die2: 6}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if id != "20260830T120000Z_rolls" {
		t.Errorf("id = %q", id)
	}

	b, err := os.ReadFile(filepath.Join(root, "runs", id+".json"))
	if err != nil {
		t.Fatal(err)
	}

	var got domain.RollSession
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got.Seed != 42 || len(got.Rolls) != 1 || got.Rolls[0].Die1 != 3 || got.Rolls[0].Die2 != 6 {
		t.Errorf("round-tripped session = %+v", got)
	}
}

func TestSaveSessionFillsStartTime(t *testing.T) {
	root := t.TempDir()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	store := NewJSONStore(root, WithNow(func() time.Time { return fixed }))
	id, err := store.SaveSession(domain.RollSession{Rolls: []domain.RollResult{{Die1: 1, Die2: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	if id != "20260102T030405Z_rolls" {
		t.Errorf("id = %q, want timestamp from injected now", id)
	}
}
