package impl

import (
	"testing"
	"time"

	"salon/internal/domain/entity"
	domainerrors "salon/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamHarness wires a salonStream to recording callbacks and a movable
// clock.
type streamHarness struct {
	stream  *salonStream
	clock   *time.Time
	updates [][]entity.Message
	errs    []error
}

func newStreamHarness(t *testing.T, retention time.Duration) *streamHarness {
	t.Helper()

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := &streamHarness{clock: &clock}

	buffer := newOptimisticBuffer(retention, func() time.Time { return *h.clock })
	h.stream = newSalonStream(
		"salon-1",
		discardLogger(),
		buffer,
		func(messages []entity.Message) { h.updates = append(h.updates, messages) },
		func(err error) { h.errs = append(h.errs, err) },
	)

	return h
}

func (h *streamHarness) advance(d time.Duration) {
	*h.clock = h.clock.Add(d)
}

func (h *streamHarness) lastUpdate() []entity.Message {
	if len(h.updates) == 0 {
		return nil
	}

	return h.updates[len(h.updates)-1]
}

func TestSalonStream_SnapshotReplacesConfirmedSet(t *testing.T) {
	h := newStreamHarness(t, 30*time.Second)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	h.stream.handleSnapshot([]entity.Message{
		msg("m3", base.Add(3*time.Second)),
		msg("m2", base.Add(2*time.Second)),
		msg("m1", base.Add(1*time.Second)),
	})
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids(h.lastUpdate()))

	// The next snapshot replaces the set wholesale, not incrementally.
	h.stream.handleSnapshot([]entity.Message{
		msg("m2", base.Add(2*time.Second)),
	})
	assert.Equal(t, []string{"m2"}, ids(h.lastUpdate()))
	assert.Equal(t, []string{"m2"}, ids(h.stream.Messages()))
}

func TestSalonStream_OptimisticConfirmedBySnapshot(t *testing.T) {
	h := newStreamHarness(t, 30*time.Second)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	local := msg("m1", base)
	h.stream.appendLocal(local)
	assert.Equal(t, []string{"m1"}, ids(h.lastUpdate()))

	// Snapshot echoes the message back; no duplicate may appear.
	h.stream.handleSnapshot([]entity.Message{local})
	assert.Equal(t, []string{"m1"}, ids(h.lastUpdate()))
	assert.Empty(t, h.errs)
}

func TestSalonStream_OptimisticSurvivesUnrelatedSnapshot(t *testing.T) {
	h := newStreamHarness(t, 30*time.Second)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	h.stream.appendLocal(msg("m2", base.Add(2*time.Second)))

	// A snapshot that does not carry the optimistic id keeps it merged.
	h.stream.handleSnapshot([]entity.Message{msg("m1", base.Add(time.Second))})
	assert.Equal(t, []string{"m1", "m2"}, ids(h.lastUpdate()))
}

func TestSalonStream_StaleSendSurfacedOnce(t *testing.T) {
	h := newStreamHarness(t, 30*time.Second)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	h.stream.appendLocal(msg("m1", base))

	h.advance(31 * time.Second)
	h.stream.handleSnapshot(nil)

	require.Len(t, h.errs, 1)
	assert.True(t, errors.Is(h.errs[0], domainerrors.ErrStaleSend))
	assert.Empty(t, ids(h.lastUpdate()))

	// The entry is gone; further snapshots stay quiet.
	h.stream.handleSnapshot(nil)
	assert.Len(t, h.errs, 1)
}

func TestSalonStream_TerminalErrorReported(t *testing.T) {
	h := newStreamHarness(t, 30*time.Second)

	h.stream.handleError(errors.New("listener torn down"))

	require.Len(t, h.errs, 1)
	assert.Contains(t, h.errs[0].Error(), "message subscription")
}

func TestSalonStream_CloseIsIdempotent(t *testing.T) {
	h := newStreamHarness(t, 30*time.Second)

	var unsubscribes int
	h.stream.unsubscribe = func() { unsubscribes++ }

	h.stream.Close()
	h.stream.Close()

	assert.Equal(t, 1, unsubscribes)
}
