package session

import (
	"sync"
	"testing"
)

func TestJoinLeaveCounts(t *testing.T) {
	r := NewRegistry()
	r.Join()
	r.Join()
	if got := r.Players(); got != 2 {
		t.Fatalf("players = %d, want 2", got)
	}
	r.Leave()
	if got := r.Players(); got != 1 {
		t.Fatalf("players = %d, want 1", got)
	}

	// Leave never goes negative, even if called out of balance.
	r.Leave()
	r.Leave()
	if got := r.Players(); got != 0 {
		t.Fatalf("players = %d, want 0", got)
	}
}

func TestSeedBestDoesNotCountAMatch(t *testing.T) {
	r := NewRegistry()
	r.SeedBest(7)
	if got := r.Best(); got != 7 {
		t.Fatalf("best after seed = %d, want 7", got)
	}
	if got := r.Matches(); got != 0 {
		t.Fatalf("matches after seed = %d, want 0", got)
	}

	r.SeedBest(3)
	if got := r.Best(); got != 7 {
		t.Fatalf("lower seed lowered best to %d", got)
	}
}

func TestRecordMatchTracksBest(t *testing.T) {
	r := NewRegistry()
	r.RecordMatch(3)
	r.RecordMatch(9)
	r.RecordMatch(5)
	if got := r.Best(); got != 9 {
		t.Fatalf("best = %d, want 9", got)
	}
	if got := r.Matches(); got != 3 {
		t.Fatalf("matches = %d, want 3", got)
	}
}

func TestRegistryIsConcurrencySafe(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			r.Join()
			r.RecordMatch(score)
			r.Leave()
		}(i)
	}
	wg.Wait()

	if got := r.Players(); got != 0 {
		t.Fatalf("players after all left = %d, want 0", got)
	}
	if got := r.Best(); got != 49 {
		t.Fatalf("best = %d, want 49", got)
	}
	if got := r.Matches(); got != 50 {
		t.Fatalf("matches = %d, want 50", got)
	}
}
