package entity

import "time"

// Message is a single chat message inside a salon. Messages are append-only:
// no update or delete exists in this core. Within a salon the displayed
// sequence is totally ordered by CreatedAt ascending, ties broken by arrival
// order, and no two displayed messages share an id.
type Message struct {
	ID         string    `json:"id"`
	SalonID    string    `json:"salonId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OptimisticEntry is a store-confirmed message not yet observed in a stream
// snapshot. It is dropped once a snapshot carries the same id, or expired
// after a bounded retention period and surfaced as a stale send.
type OptimisticEntry struct {
	Message Message
	SentAt  time.Time
}

// Expired reports whether the entry outlived the retention window without
// ever being confirmed by a snapshot.
func (e *OptimisticEntry) Expired(now time.Time, retention time.Duration) bool {
	return now.Sub(e.SentAt) > retention
}
