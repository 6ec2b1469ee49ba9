package models

import "time"

// LeaderboardEntry is an immutable score snapshot on the leaderboard
type LeaderboardEntry struct {
	Name   string    `json:"name"`
	Level  int       `json:"level"`
	Points int       `json:"points"`
	Stars  int       `json:"stars"`
	Date   time.Time `json:"date"`
}
