// ABOUTME: Tests for the live query helper.
package store

import (
	"testing"
	"time"
)

func waitResult[R any](t *testing.T, ch <-chan R) R {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for live result")
		var zero R
		return zero
	}
}

func TestLiveDeliversInitialResult(t *testing.T) {
	eng := openTestEngine(t, testVersions())
	items := NewTable[item](eng, "items")

	if _, err := items.Insert(&item{Name: "seed", At: time.Now()}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	lq := Live(eng.Bus(), items.Count, nil, "items")
	defer lq.Close()

	if got := waitResult(t, lq.C); got != 1 {
		t.Errorf("initial result mismatch: got %d, want 1", got)
	}
}

func TestLiveRerunsOnRelevantWrites(t *testing.T) {
	eng := openTestEngine(t, testVersions())
	items := NewTable[item](eng, "items")

	lq := Live(eng.Bus(), items.Count, nil, "items")
	defer lq.Close()

	if got := waitResult(t, lq.C); got != 0 {
		t.Fatalf("initial result mismatch: got %d, want 0", got)
	}

	if _, err := items.Insert(&item{Name: "w", At: time.Now()}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Results may coalesce, but the latest delivered value must converge on 1.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-lq.C:
			if got == 1 {
				return
			}
		case <-deadline:
			t.Fatal("live query never observed the write")
		}
	}
}

func TestLiveCloseIsIdempotent(t *testing.T) {
	eng := openTestEngine(t, testVersions())
	items := NewTable[item](eng, "items")

	lq := Live(eng.Bus(), items.Count, nil, "items")
	lq.Close()
	lq.Close()
}
