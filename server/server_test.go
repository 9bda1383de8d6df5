package server

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/chuch3/sparrow/sim"
)

func testSimConfig() sim.Config {
	return sim.Config{
		SpeedMin:      0.001,
		SpeedMax:      0.005,
		SpeedAccel:    0.05,
		RotationAccel: 0.8,

		MutationChance:    0.01,
		MutationMagnitude: 0.3,
		GenerationLength:  10,

		Animals:         6,
		Foods:           4,
		InitialSpeed:    0.002,
		CollisionRadius: 0.01,

		FovRange: 0.25,
		FovAngle: 3.0,
		Cells:    5,

		CoherenceWeight:    0.5,
		SeparationWeight:   0.55,
		AlignmentWeight:    0.45,
		SeparationDistance: 0.05,
	}
}

func TestTakeSnapshot(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := sim.New(rng, testSimConfig())

	snap := TakeSnapshot(s, 42)

	if snap.Type != "snapshot" {
		t.Errorf("Type = %q, want %q", snap.Type, "snapshot")
	}
	if snap.Tick != 42 {
		t.Errorf("Tick = %d, want 42", snap.Tick)
	}
	if len(snap.Animals) != 6 {
		t.Errorf("len(Animals) = %d, want 6", len(snap.Animals))
	}
	if len(snap.Foods) != 4 {
		t.Errorf("len(Foods) = %d, want 4", len(snap.Foods))
	}
	for i, a := range snap.Animals {
		if a.X < 0 || a.X >= 1 || a.Y < 0 || a.Y >= 1 {
			t.Errorf("animal %d outside unit square: (%v, %v)", i, a.X, a.Y)
		}
		if a.Speed != 0.002 {
			t.Errorf("animal %d Speed = %v, want initial 0.002", i, a.Speed)
		}
	}
}

func TestSnapshotJSONShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := sim.New(rng, testSimConfig())

	data, err := json.Marshal(TakeSnapshot(s, 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"type", "generation", "age", "tick", "animals", "foods"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("snapshot JSON missing key %q", key)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		msg  map[string]interface{}
		want Command
		ok   bool
	}{
		{map[string]interface{}{"type": "pause"}, CommandPause, true},
		{map[string]interface{}{"type": "resume"}, CommandResume, true},
		{map[string]interface{}{"type": "fast_forward"}, CommandFastForward, true},
		{map[string]interface{}{"type": "unknown"}, 0, false},
		{map[string]interface{}{}, 0, false},
		{map[string]interface{}{"type": 3.0}, 0, false},
	}

	for _, tt := range tests {
		got, ok := parseCommand(tt.msg)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseCommand(%v) = (%v, %v), want (%v, %v)", tt.msg, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPublishDoesNotBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := sim.New(rng, testSimConfig())

	srv := &Server{
		clients:   make(map[*client]struct{}),
		snapshots: make(chan Snapshot, 2),
		commands:  make(chan Command, 1),
	}

	// No broadcast goroutine is draining; Publish must still return.
	for i := 0; i < 10; i++ {
		srv.Publish(TakeSnapshot(s, i))
	}

	// The queue holds the most recent snapshots, not the oldest.
	got := <-srv.snapshots
	if got.Tick == 0 {
		t.Errorf("queue kept the oldest snapshot, want older ones dropped")
	}
}
