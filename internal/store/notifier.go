package store

// Notifier receives one-way user-facing notifications (level-up, world
// unlock, leaderboard submission). The HTTP layer collects them per
// request; display and timing belong to the client.
type Notifier interface {
	Notify(message string)
}

// NopNotifier discards notifications
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}
