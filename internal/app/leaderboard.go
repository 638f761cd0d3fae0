package app

import (
	"sort"
	"sync"
	"time"

	"human-or-ai/internal/domain"
)

// DefaultLeaderboardSize is how many rows a ranked leaderboard shows.
const DefaultLeaderboardSize = 10

// Leaderboard is the process-lifetime, append-only record of completed sessions.
type Leaderboard struct {
	limit int
	now   func() time.Time

	mu          sync.RWMutex
	entries     []domain.LeaderboardEntry
	subscribers map[chan domain.Leaderboard]struct{}
}

// NewLeaderboard ranks at most limit rows; limit <= 0 uses DefaultLeaderboardSize.
func NewLeaderboard(limit int) *Leaderboard {
	return NewLeaderboardWithClock(limit, time.Now)
}

// NewLeaderboardWithClock allows deterministic timestamps in tests.
func NewLeaderboardWithClock(limit int, now func() time.Time) *Leaderboard {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	return &Leaderboard{
		limit:       limit,
		now:         now,
		subscribers: make(map[chan domain.Leaderboard]struct{}),
	}
}

// Append records an entry and pushes the new ranking to subscribers.
func (l *Leaderboard) Append(entry domain.LeaderboardEntry) domain.Leaderboard {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return l.broadcastLocked()
}

// Rank returns the current ranked snapshot.
func (l *Leaderboard) Rank() domain.Leaderboard {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

// Len is the number of archived sessions, including those outside the top rows.
func (l *Leaderboard) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Subscribe returns a channel receiving a ranked snapshot after every append.
// The caller must invoke cancel to release it.
func (l *Leaderboard) Subscribe() (<-chan domain.Leaderboard, func()) {
	ch := make(chan domain.Leaderboard, 8)

	// Initial snapshot goes out under the lock, ahead of any broadcast.
	l.mu.Lock()
	l.subscribers[ch] = struct{}{}
	ch <- l.snapshotLocked()
	l.mu.Unlock()

	cancel := func() {
		l.mu.Lock()
		if _, ok := l.subscribers[ch]; ok {
			delete(l.subscribers, ch)
			close(ch)
		}
		l.mu.Unlock()
	}
	return ch, cancel
}

func (l *Leaderboard) broadcastLocked() domain.Leaderboard {
	lb := l.snapshotLocked()
	for ch := range l.subscribers {
		select {
		case ch <- lb:
		default:
			// Slow reader: drop its oldest snapshot so broadcast never blocks.
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
	return lb
}

func (l *Leaderboard) snapshotLocked() domain.Leaderboard {
	return domain.Leaderboard{
		Entries:   RankLeaderboard(l.entries, l.limit),
		UpdatedAt: l.now(),
	}
}

// RankLeaderboard orders entries by score descending, keeping submission
// order among ties, and keeps the first limit rows.
func RankLeaderboard(entries []domain.LeaderboardEntry, limit int) []domain.RankedEntry {
	sorted := make([]domain.LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	ranked := make([]domain.RankedEntry, len(sorted))
	for i, e := range sorted {
		ranked[i] = domain.RankedEntry{Rank: i + 1, LeaderboardEntry: e}
	}
	return ranked
}
