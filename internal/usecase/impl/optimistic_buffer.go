package impl

import (
	"sort"
	"sync"
	"time"

	"salon/internal/domain/entity"
)

// optimisticBuffer holds store-confirmed messages that no snapshot has
// echoed back yet. Entries are matched against snapshots strictly by id:
// once the store assigned an id, content equality is never consulted, since
// identical repeated texts would misfire.
type optimisticBuffer struct {
	mu        sync.Mutex
	entries   []entity.OptimisticEntry
	retention time.Duration
	now       func() time.Time
}

func newOptimisticBuffer(retention time.Duration, now func() time.Time) *optimisticBuffer {
	return &optimisticBuffer{
		retention: retention,
		now:       now,
	}
}

// Add records a freshly persisted message awaiting snapshot confirmation.
func (b *optimisticBuffer) Add(msg entity.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, entity.OptimisticEntry{
		Message: msg,
		SentAt:  b.now(),
	})
}

// Reconcile drops every entry whose id appears in the confirmed sequence.
func (b *optimisticBuffer) Reconcile(confirmed []entity.Message) {
	seen := make(map[string]struct{}, len(confirmed))
	for _, msg := range confirmed {
		seen[msg.ID] = struct{}{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.entries[:0]
	for _, entry := range b.entries {
		if _, ok := seen[entry.Message.ID]; ok {
			continue
		}
		kept = append(kept, entry)
	}
	b.entries = kept
}

// Expire removes entries past the retention window and returns them so the
// caller can surface them as stale sends.
func (b *optimisticBuffer) Expire() []entity.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	var expired []entity.Message
	kept := b.entries[:0]
	for _, entry := range b.entries {
		if entry.Expired(now, b.retention) {
			expired = append(expired, entry.Message)

			continue
		}
		kept = append(kept, entry)
	}
	b.entries = kept

	return expired
}

// Pending returns the messages still awaiting confirmation.
func (b *optimisticBuffer) Pending() []entity.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	pending := make([]entity.Message, 0, len(b.entries))
	for _, entry := range b.entries {
		pending = append(pending, entry.Message)
	}

	return pending
}

// normalizeSnapshot projects a store snapshot (descending creation time as
// queried) into the display order: ascending creation time, ties broken by
// arrival order within the snapshot, duplicate ids dropped.
func normalizeSnapshot(snapshot []entity.Message) []entity.Message {
	out := make([]entity.Message, 0, len(snapshot))
	seen := make(map[string]struct{}, len(snapshot))
	for _, msg := range snapshot {
		if _, ok := seen[msg.ID]; ok {
			continue
		}
		seen[msg.ID] = struct{}{}
		out = append(out, msg)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

// mergeMessages combines the confirmed sequence with optimistic entries.
// Confirmed entries win on id collision; the result stays totally ordered by
// creation time, ties stable.
func mergeMessages(confirmed, optimistic []entity.Message) []entity.Message {
	merged := make([]entity.Message, 0, len(confirmed)+len(optimistic))
	merged = append(merged, confirmed...)

	seen := make(map[string]struct{}, len(confirmed))
	for _, msg := range confirmed {
		seen[msg.ID] = struct{}{}
	}
	for _, msg := range optimistic {
		if _, ok := seen[msg.ID]; ok {
			continue
		}
		merged = append(merged, msg)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})

	return merged
}
