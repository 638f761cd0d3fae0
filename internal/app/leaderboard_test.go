package app

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"human-or-ai/internal/domain"
)

func TestRankLeaderboardStableByScore(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{Name: "first", Score: 3, Total: 10},
		{Name: "second", Score: 7, Total: 10},
		{Name: "third", Score: 7, Total: 10},
		{Name: "fourth", Score: 2, Total: 10},
	}
	ranked := RankLeaderboard(entries, 10)
	want := []string{"second", "third", "first", "fourth"}
	for i, name := range want {
		if ranked[i].Name != name || ranked[i].Rank != i+1 {
			t.Fatalf("position %d: got %s (rank %d), want %s", i, ranked[i].Name, ranked[i].Rank, name)
		}
	}
	if entries[0].Name != "first" {
		t.Fatalf("ranking must not reorder the input")
	}
}

func TestRankLeaderboardTruncates(t *testing.T) {
	var entries []domain.LeaderboardEntry
	for i := 0; i < 15; i++ {
		entries = append(entries, domain.LeaderboardEntry{Name: fmt.Sprintf("p%d", i), Score: i % 3, Total: 5})
	}
	ranked := RankLeaderboard(entries, DefaultLeaderboardSize)
	if len(ranked) != 10 {
		t.Fatalf("expected top 10, got %d", len(ranked))
	}
	if ranked[0].Name != "p2" || ranked[0].Score != 2 {
		t.Fatalf("expected earliest top scorer first, got %+v", ranked[0])
	}
}

func TestLeaderboardAppendAndSubscribe(t *testing.T) {
	lb := NewLeaderboardWithClock(0, func() time.Time { return time.Unix(100, 0) })
	ch, cancel := lb.Subscribe()
	defer cancel()

	initial := <-ch
	if len(initial.Entries) != 0 {
		t.Fatalf("expected empty initial snapshot")
	}

	lb.Append(domain.LeaderboardEntry{Name: "Ada", Score: 4, Total: 5})
	update := <-ch
	if len(update.Entries) != 1 || update.Entries[0].Name != "Ada" {
		t.Fatalf("unexpected update %+v", update.Entries)
	}
	if !update.UpdatedAt.Equal(time.Unix(100, 0)) {
		t.Fatalf("expected injected clock timestamp")
	}
	if lb.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", lb.Len())
	}
}

func TestLeaderboardSlowSubscriberDoesNotBlock(t *testing.T) {
	lb := NewLeaderboard(10)
	ch, cancel := lb.Subscribe()
	defer cancel()

	for i := 0; i < 50; i++ {
		lb.Append(domain.LeaderboardEntry{Name: "x", Score: i, Total: 50})
	}
	var last domain.Leaderboard
	for len(ch) > 0 {
		last = <-ch
	}
	if len(last.Entries) == 0 || last.Entries[0].Score != 49 {
		t.Fatalf("expected latest snapshot to survive, got %+v", last.Entries)
	}
}

func TestLeaderboardSubscribeSnapshotsNeverGoBackwards(t *testing.T) {
	lb := NewLeaderboard(0)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			lb.Append(domain.LeaderboardEntry{Name: "x", Score: i, Total: 200})
		}
	}()

	for i := 0; i < 50; i++ {
		ch, cancel := lb.Subscribe()
		prev := topScore(<-ch)
		for len(ch) > 0 {
			next := topScore(<-ch)
			if next < prev {
				cancel()
				t.Fatalf("snapshot went backwards: top %d after %d", next, prev)
			}
			prev = next
		}
		cancel()
	}
	wg.Wait()
}

func topScore(lb domain.Leaderboard) int {
	if len(lb.Entries) == 0 {
		return -1
	}
	return lb.Entries[0].Score
}
