package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon/config"
	deliverycontext "salon/internal/delivery/context"
	"salon/internal/domain/entity"
	domainerrors "salon/internal/domain/errors"
	"salon/internal/domain/repository"
	"salon/internal/domain/service"
	"salon/internal/errors"
	"salon/internal/usecase"
)

// chatService implements the ChatUsecase interface: it owns the per-salon
// streams and orchestrates sends across persistence, optimistic merge,
// notification dispatch and event publishing.
type chatService struct {
	logger     *slog.Logger
	messages   repository.MessageRepository
	salons     repository.SalonRepository
	dispatcher service.NotificationDispatcher
	publisher  service.EventPublisher
	retention  time.Duration
	now        func() time.Time

	mu      sync.Mutex
	streams map[string]*salonStream
}

// NewChatService is the constructor for chatService.
func NewChatService(
	cfg *config.Config,
	logger *slog.Logger,
	messages repository.MessageRepository,
	salons repository.SalonRepository,
	dispatcher service.NotificationDispatcher,
	publisher service.EventPublisher,
) usecase.ChatUsecase {
	return &chatService{
		logger:     logger,
		messages:   messages,
		salons:     salons,
		dispatcher: dispatcher,
		publisher:  publisher,
		retention:  cfg.OptimisticRetention(),
		now:        time.Now,
		streams:    make(map[string]*salonStream),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenSalon subscribes to a salon's message stream and registers the live
// view so subsequent sends can merge optimistically into it.
func (srv *chatService) OpenSalon(
	ctx context.Context,
	salonID string,
	onUpdate func([]entity.Message),
	onError func(error),
) (usecase.SalonSession, error) {
	buffer := newOptimisticBuffer(srv.retention, srv.now)
	stream := newSalonStream(salonID, srv.logger, buffer, onUpdate, onError)

	unsubscribe, err := srv.messages.Subscribe(ctx, salonID, stream.handleSnapshot, stream.handleError)
	if err != nil {
		return nil, errors.Wrap(err, "subscribe to salon messages")
	}
	stream.unsubscribe = unsubscribe

	srv.mu.Lock()
	srv.streams[salonID] = stream
	srv.mu.Unlock()

	srv.log(ctx).Info("salon stream opened", slog.String("salon_id", salonID))

	return &salonSession{service: srv, stream: stream}, nil
}

// Send persists the message, merges it into the open salon view immediately,
// then fans out a best-effort push notification and a message event. Only
// the persistence step can fail the operation.
func (srv *chatService) Send(ctx context.Context, input usecase.SendMessageInput) (*entity.Message, error) {
	confirmed, err := srv.messages.Add(ctx, &entity.Message{
		SalonID:    input.SalonID,
		SenderID:   input.SenderID,
		SenderName: input.SenderName,
		Text:       input.Text,
	})
	if err != nil {
		srv.log(ctx).Error("message persistence failed",
			slog.String("salon_id", input.SalonID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSendFailure.WrapMessage(err.Error())
	}

	srv.mu.Lock()
	stream := srv.streams[input.SalonID]
	srv.mu.Unlock()
	if stream != nil {
		stream.appendLocal(*confirmed)
	}

	// Everything past this point is best effort and must never roll back
	// the persisted message or the optimistic merge.
	srv.dispatch(ctx, confirmed, input.SenderName)

	return confirmed, nil
}

// dispatch resolves the other participant and sends the push notification
// and the message event. All failures are logged and swallowed.
func (srv *chatService) dispatch(ctx context.Context, msg *entity.Message, senderName string) {
	recipient, err := srv.salons.OtherParticipant(ctx, msg.SalonID, msg.SenderID)
	if err != nil {
		srv.log(ctx).Warn("recipient resolution failed",
			slog.String("salon_id", msg.SalonID),
			slog.Any("error", err),
		)

		return
	}

	payload := entity.NotificationPayload{
		Title: senderName,
		Body:  msg.Text,
		Type:  entity.NotificationTypeDirectMessage,
	}
	if err := srv.dispatcher.SendDirectMessage(ctx, recipient, payload); err != nil {
		srv.log(ctx).Warn("notification dispatch failed",
			slog.String("salon_id", msg.SalonID),
			slog.String("recipient", recipient),
			slog.Any("error", err),
		)
	}

	event := &service.MessageEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		MessageID:  msg.ID,
		SalonID:    msg.SalonID,
		SenderID:   msg.SenderID,
		Recipient:  recipient,
		OccurredAt: msg.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := srv.publisher.PublishMessageEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("message event publish failed",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
	}
}

// salonSession pairs a stream with its registry entry so Close also
// deregisters it from the service.
type salonSession struct {
	service *chatService
	stream  *salonStream
	once    sync.Once
}

func (s *salonSession) Messages() []entity.Message {
	return s.stream.Messages()
}

func (s *salonSession) Close() {
	s.once.Do(func() {
		s.stream.Close()
		s.service.mu.Lock()
		if s.service.streams[s.stream.salonID] == s.stream {
			delete(s.service.streams, s.stream.salonID)
		}
		s.service.mu.Unlock()
	})
}
