package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"wordkingdom/internal/models"
	"wordkingdom/internal/storage"
)

// leaderboardMu serializes submissions. The leaderboard lives under a
// single key, and stores are constructed per request, so the lock must
// span instances or concurrent read-append-write cycles lose entries.
var leaderboardMu sync.Mutex

// LeaderboardStore owns the append-only, sorted leaderboard
type LeaderboardStore struct {
	kv       storage.KV
	notifier Notifier
}

// NewLeaderboardStore creates a leaderboard store over the given persistence
func NewLeaderboardStore(kv storage.KV, notifier Notifier) *LeaderboardStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &LeaderboardStore{kv: kv, notifier: notifier}
}

// List returns the entries, already sorted descending by points
func (s *LeaderboardStore) List() []models.LeaderboardEntry {
	raw, ok, err := s.kv.Get(storage.LeaderboardKey)
	if err != nil {
		log.Printf("Error loading leaderboard: %v", err)
		return []models.LeaderboardEntry{}
	}
	if !ok {
		return []models.LeaderboardEntry{}
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("Corrupted leaderboard, resetting: %v", err)
		return []models.LeaderboardEntry{}
	}
	return entries
}

// Submit snapshots the profile's current totals onto the leaderboard.
// Entries are re-sorted descending by points with a stable sort, so ties
// keep their insertion order. Players may appear multiple times.
func (s *LeaderboardStore) Submit(profile *models.PlayerProfile) (models.LeaderboardEntry, error) {
	leaderboardMu.Lock()
	defer leaderboardMu.Unlock()

	entry := models.LeaderboardEntry{
		Name:   profile.Name,
		Level:  profile.Level,
		Points: profile.TotalPoints(),
		Stars:  profile.TotalStars(),
		Date:   time.Now(),
	}

	entries := append(s.List(), entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	raw, err := json.Marshal(entries)
	if err != nil {
		return models.LeaderboardEntry{}, fmt.Errorf("failed to serialize leaderboard: %w", err)
	}
	if err := s.kv.Set(storage.LeaderboardKey, string(raw)); err != nil {
		return models.LeaderboardEntry{}, fmt.Errorf("failed to persist leaderboard: %w", err)
	}

	s.notifier.Notify("تمت إضافة نتيجتك إلى قاعة الشرف ✨")
	return entry, nil
}
