package impl

import (
	"testing"
	"time"

	"salon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id string, createdAt time.Time) entity.Message {
	return entity.Message{
		ID:        id,
		SalonID:   "salon-1",
		SenderID:  "user-1",
		Text:      "hello",
		CreatedAt: createdAt,
	}
}

func ids(messages []entity.Message) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.ID)
	}

	return out
}

func TestNormalizeSnapshot_SortsAscending(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// The store delivers newest-first.
	snapshot := []entity.Message{
		msg("m3", base.Add(3*time.Second)),
		msg("m1", base.Add(1*time.Second)),
		msg("m2", base.Add(2*time.Second)),
	}

	normalized := normalizeSnapshot(snapshot)
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids(normalized))
}

func TestNormalizeSnapshot_DropsDuplicateIDs(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	snapshot := []entity.Message{
		msg("m1", base),
		msg("m1", base.Add(time.Second)),
		msg("m2", base.Add(2*time.Second)),
	}

	normalized := normalizeSnapshot(snapshot)
	assert.Equal(t, []string{"m1", "m2"}, ids(normalized))

	// First occurrence wins.
	assert.Equal(t, base, normalized[0].CreatedAt)
}

func TestNormalizeSnapshot_TiesKeepArrivalOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	snapshot := []entity.Message{
		msg("m1", base),
		msg("m2", base),
		msg("m3", base),
	}

	normalized := normalizeSnapshot(snapshot)
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids(normalized))
}

func TestMergeMessages_ConfirmedWinsOnCollision(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	confirmedMsg := msg("m1", base)
	confirmedMsg.Text = "confirmed"
	optimisticMsg := msg("m1", base)
	optimisticMsg.Text = "optimistic"

	merged := mergeMessages([]entity.Message{confirmedMsg}, []entity.Message{optimisticMsg})
	require.Len(t, merged, 1)
	assert.Equal(t, "confirmed", merged[0].Text)
}

func TestMergeMessages_InterleavesByCreationTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	confirmed := []entity.Message{
		msg("m1", base.Add(1*time.Second)),
		msg("m3", base.Add(3*time.Second)),
	}
	optimistic := []entity.Message{
		msg("m2", base.Add(2*time.Second)),
	}

	merged := mergeMessages(confirmed, optimistic)
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids(merged))
}

func TestMergeMessages_IdenticalTextsAreDistinctMessages(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Same sender, same text, different ids: both must survive the merge.
	confirmed := []entity.Message{msg("m1", base)}
	optimistic := []entity.Message{msg("m2", base.Add(time.Second))}

	merged := mergeMessages(confirmed, optimistic)
	assert.Equal(t, []string{"m1", "m2"}, ids(merged))
}

func TestOptimisticBuffer_ReconcileDropsConfirmed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	buffer := newOptimisticBuffer(30*time.Second, func() time.Time { return now })

	buffer.Add(msg("m1", now))
	buffer.Add(msg("m2", now))

	buffer.Reconcile([]entity.Message{msg("m1", now)})

	assert.Equal(t, []string{"m2"}, ids(buffer.Pending()))
}

func TestOptimisticBuffer_ExpireReturnsStaleEntries(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	buffer := newOptimisticBuffer(30*time.Second, func() time.Time { return clock })

	buffer.Add(msg("m1", now))

	// Within the window nothing expires.
	clock = now.Add(30 * time.Second)
	assert.Empty(t, buffer.Expire())
	assert.Equal(t, []string{"m1"}, ids(buffer.Pending()))

	// Past the window the entry is surfaced and removed.
	clock = now.Add(31 * time.Second)
	expired := buffer.Expire()
	assert.Equal(t, []string{"m1"}, ids(expired))
	assert.Empty(t, buffer.Pending())
}
