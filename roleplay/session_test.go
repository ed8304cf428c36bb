package roleplay

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreCreateClampsMemoryLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"below minimum", 0, MinMemoryLimit},
		{"negative", -5, MinMemoryLimit},
		{"within range", 6, 6},
		{"at maximum", 20, 20},
		{"above maximum", 100, MaxMemoryLimit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := NewStore()
			id := st.Create("牛顿", DefaultCard("牛顿"), tc.limit)
			sess, ok := st.Get(id)
			if !ok {
				t.Fatalf("session %s not found after create", id)
			}
			if sess.Limit() != tc.want {
				t.Fatalf("limit = %d, want %d", sess.Limit(), tc.want)
			}
		})
	}
}

func TestStoreGetUnknownSession(t *testing.T) {
	st := NewStore()
	if _, ok := st.Get("no-such-session"); ok {
		t.Fatal("expected not-found for unknown session id")
	}
	if st.AppendTurn("no-such-session", "u", "a") {
		t.Fatal("expected AppendTurn to report unknown session")
	}
}

func TestAppendTurnEvictsOldest(t *testing.T) {
	st := NewStore()
	id := st.Create("苏格拉底", DefaultCard("苏格拉底"), 3)

	for i := 1; i <= 4; i++ {
		st.AppendTurn(id, fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i))
	}

	sess, _ := st.Get(id)
	history := sess.History()
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[0].User != "question 2" {
		t.Fatalf("oldest retained turn = %q, want %q", history[0].User, "question 2")
	}
	if history[2].Assistant != "answer 4" {
		t.Fatalf("newest turn = %q, want %q", history[2].Assistant, "answer 4")
	}
}

func TestAppendTurnCountEqualsMinOfNAndLimit(t *testing.T) {
	for _, n := range []int{1, 5, 25} {
		st := NewStore()
		id := st.Create("孔子", DefaultCard("孔子"), 5)
		for i := 0; i < n; i++ {
			st.AppendTurn(id, "u", "a")
		}
		sess, _ := st.Get(id)
		want := n
		if want > 5 {
			want = 5
		}
		if got := len(sess.History()); got != want {
			t.Fatalf("after %d appends history length = %d, want %d", n, got, want)
		}
	}
}

func TestAppendTurnConcurrent(t *testing.T) {
	st := NewStore()
	id := st.Create("孙悟空", DefaultCard("孙悟空"), MaxMemoryLimit)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.AppendTurn(id, fmt.Sprintf("u%d", i), fmt.Sprintf("a%d", i))
		}(i)
	}
	wg.Wait()

	sess, _ := st.Get(id)
	if got := len(sess.History()); got != MaxMemoryLimit {
		t.Fatalf("history length = %d, want %d", got, MaxMemoryLimit)
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	st := NewStore()
	id := st.Create("牛顿", DefaultCard("牛顿"), 5)
	st.AppendTurn(id, "u", "a")

	sess, _ := st.Get(id)
	history := sess.History()
	history[0].User = "mutated"

	if fresh := sess.History(); fresh[0].User != "u" {
		t.Fatal("History must return a copy, not the backing slice")
	}
}
