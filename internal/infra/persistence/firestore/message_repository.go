package firestore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon/internal/domain/entity"
	"salon/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// messageModel is the Firestore document shape of a chat message. The store
// assigns the creation timestamp on write.
type messageModel struct {
	SenderID   string    `firestore:"senderId"`
	SenderName string    `firestore:"senderName"`
	SalonID    string    `firestore:"salonId"`
	Message    string    `firestore:"message"`
	CreatedAt  time.Time `firestore:"createdAt,serverTimestamp"`
}

type messageRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewMessageRepository is the constructor for the Firestore-backed
// MessageRepository.
func NewMessageRepository(client *firestore.Client, logger *slog.Logger) repository.MessageRepository {
	return &messageRepository{
		client: client,
		logger: logger,
	}
}

// Add persists a new message. The returned message carries the store-assigned
// document id and the server-side write timestamp.
func (r *messageRepository) Add(ctx context.Context, msg *entity.Message) (*entity.Message, error) {
	model := &messageModel{
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		SalonID:    msg.SalonID,
		Message:    msg.Text,
	}

	docRef, writeResult, err := r.client.Collection(messagesCollection).Add(ctx, model)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	confirmed := *msg
	confirmed.ID = docRef.ID
	confirmed.CreatedAt = writeResult.UpdateTime

	return &confirmed, nil
}

// Subscribe registers a snapshot listener over the salon's messages, ordered
// by creation time descending. Every change redelivers the full matching
// set. A terminal error is reported once and the listener stops; no retry.
func (r *messageRepository) Subscribe(
	ctx context.Context,
	salonID string,
	onSnapshot func([]entity.Message),
	onError func(error),
) (repository.Unsubscribe, error) {
	query := r.client.Collection(messagesCollection).
		Where("salonId", "==", salonID).
		OrderBy("createdAt", firestore.Desc)

	listenCtx, cancel := context.WithCancel(ctx)
	iter := query.Snapshots(listenCtx)

	go func() {
		for {
			snap, err := iter.Next()
			if err != nil {
				if listenCtx.Err() == nil {
					onError(classifyStoreError(err))
				}

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				if listenCtx.Err() == nil {
					onError(classifyStoreError(err))
				}

				return
			}

			messages := make([]entity.Message, 0, len(docs))
			for _, doc := range docs {
				var model messageModel
				if err := doc.DataTo(&model); err != nil {
					// A single undecodable document must not kill the
					// stream; skip it and keep the snapshot coherent.
					r.logger.Warn("skipping undecodable message document",
						slog.String("doc_id", doc.Ref.ID),
						slog.Any("error", err),
					)

					continue
				}
				messages = append(messages, entity.Message{
					ID:         doc.Ref.ID,
					SalonID:    model.SalonID,
					SenderID:   model.SenderID,
					SenderName: model.SenderName,
					Text:       model.Message,
					CreatedAt:  model.CreatedAt,
				})
			}

			onSnapshot(messages)
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			iter.Stop()
		})
	}

	return unsubscribe, nil
}
