package impl

import (
	"log/slog"
	"sync"

	"salon/internal/domain/entity"
	domainerrors "salon/internal/domain/errors"
	"salon/internal/domain/repository"
	"salon/internal/errors"
)

// salonStream is one live subscription to a salon's message collection. Each
// snapshot replaces the entire confirmed sequence (never a partial patch),
// is normalized to ascending display order, reconciled against the
// optimistic buffer, and republished merged.
type salonStream struct {
	salonID string
	logger  *slog.Logger
	buffer  *optimisticBuffer

	mu        sync.Mutex
	confirmed []entity.Message
	merged    []entity.Message

	onUpdate func([]entity.Message)
	onError  func(error)

	unsubscribe repository.Unsubscribe
	closeOnce   sync.Once
}

func newSalonStream(
	salonID string,
	logger *slog.Logger,
	buffer *optimisticBuffer,
	onUpdate func([]entity.Message),
	onError func(error),
) *salonStream {
	return &salonStream{
		salonID:  salonID,
		logger:   logger,
		buffer:   buffer,
		onUpdate: onUpdate,
		onError:  onError,
	}
}

// handleSnapshot ingests a full-set snapshot from the store. Last snapshot
// wins; there is no concurrency control beyond the replace semantics.
func (s *salonStream) handleSnapshot(snapshot []entity.Message) {
	s.mu.Lock()
	s.confirmed = normalizeSnapshot(snapshot)
	s.buffer.Reconcile(s.confirmed)
	stale := s.buffer.Expire()
	s.merged = mergeMessages(s.confirmed, s.buffer.Pending())
	merged := s.merged
	s.mu.Unlock()

	for _, msg := range stale {
		s.logger.Warn("optimistic message never confirmed",
			slog.String("salon_id", s.salonID),
			slog.String("message_id", msg.ID),
		)
		s.onError(errors.Wrapf(domainerrors.ErrStaleSend, "message %s", msg.ID))
	}

	s.onUpdate(merged)
}

// handleError receives the terminal subscription error. The repository has
// already stopped the listener; this stream only reports, it never retries.
func (s *salonStream) handleError(err error) {
	s.logger.Error("message subscription failed",
		slog.String("salon_id", s.salonID),
		slog.Any("error", err),
	)
	s.onError(errors.Wrap(err, "message subscription"))
}

// appendLocal merges a just-persisted message into the display sequence
// without waiting for the next snapshot, so the sender sees their own
// message with zero round-trip latency.
func (s *salonStream) appendLocal(msg entity.Message) {
	s.buffer.Add(msg)

	s.mu.Lock()
	s.merged = mergeMessages(s.confirmed, s.buffer.Pending())
	merged := s.merged
	s.mu.Unlock()

	s.onUpdate(merged)
}

// Messages returns the current merged display sequence.
func (s *salonStream) Messages() []entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Message, len(s.merged))
	copy(out, s.merged)

	return out
}

// Close cancels the snapshot subscription. Idempotent.
func (s *salonStream) Close() {
	s.closeOnce.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
}
