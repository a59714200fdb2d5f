package impl

import (
	"context"
	"testing"
	"time"

	"salon/config"
	"salon/internal/domain/entity"
	domainerrors "salon/internal/domain/errors"
	"salon/internal/domain/repository"
	"salon/internal/domain/service"
	mockRepo "salon/internal/mocks/repository"
	mockService "salon/internal/mocks/service"
	"salon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service     usecase.ChatUsecase
	messageRepo *mockRepo.MockMessageRepository
	salonRepo   *mockRepo.MockSalonRepository
	dispatcher  *mockService.MockNotificationDispatcher
	publisher   *mockService.MockEventPublisher
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	salonRepo := mockRepo.NewMockSalonRepository(t)
	dispatcher := mockService.NewMockNotificationDispatcher(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewChatService(&config.Config{}, discardLogger(), messageRepo, salonRepo, dispatcher, publisher)

	return chatServiceFixtures{
		service:     service,
		messageRepo: messageRepo,
		salonRepo:   salonRepo,
		dispatcher:  dispatcher,
		publisher:   publisher,
	}
}

func confirmedMessage(id string) *entity.Message {
	return &entity.Message{
		ID:         id,
		SalonID:    "salon-1",
		SenderID:   "user-1",
		SenderName: "Alice",
		Text:       "hello",
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestChatService_Send_Success(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.messageRepo.EXPECT().
		Add(ctx, mock.MatchedBy(func(m *entity.Message) bool {
			return m.SalonID == "salon-1" && m.Text == "hello" && m.ID == ""
		})).
		Return(confirmedMessage("m1"), nil)

	fx.salonRepo.EXPECT().
		OtherParticipant(ctx, "salon-1", "user-1").
		Return("user-2", nil)

	fx.dispatcher.EXPECT().
		SendDirectMessage(ctx, "user-2", entity.NotificationPayload{
			Title: "Alice",
			Body:  "hello",
			Type:  entity.NotificationTypeDirectMessage,
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMessageEvent(ctx, mock.MatchedBy(func(event *service.MessageEvent) bool {
			return event.MessageID == "m1" && event.Recipient == "user-2" && event.SalonID == "salon-1"
		})).
		Return(nil)

	confirmed, err := fx.service.Send(ctx, usecase.SendMessageInput{
		SalonID:    "salon-1",
		SenderID:   "user-1",
		SenderName: "Alice",
		Text:       "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", confirmed.ID)
	assert.False(t, confirmed.CreatedAt.IsZero())
}

func TestChatService_Send_PersistenceFailureAborts(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.messageRepo.EXPECT().
		Add(ctx, mock.Anything).
		Return(nil, errors.New("write rejected"))

	confirmed, err := fx.service.Send(ctx, usecase.SendMessageInput{
		SalonID:    "salon-1",
		SenderID:   "user-1",
		SenderName: "Alice",
		Text:       "hello",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSendFailure))
	assert.Nil(t, confirmed)
}

func TestChatService_Send_DispatchFailureIsSwallowed(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.messageRepo.EXPECT().
		Add(ctx, mock.Anything).
		Return(confirmedMessage("m1"), nil)

	fx.salonRepo.EXPECT().
		OtherParticipant(ctx, "salon-1", "user-1").
		Return("user-2", nil)

	fx.dispatcher.EXPECT().
		SendDirectMessage(ctx, "user-2", mock.Anything).
		Return(errors.New("fcm unreachable"))

	// The event still goes out after a failed push.
	fx.publisher.EXPECT().
		PublishMessageEvent(ctx, mock.Anything).
		Return(nil)

	confirmed, err := fx.service.Send(ctx, usecase.SendMessageInput{
		SalonID:    "salon-1",
		SenderID:   "user-1",
		SenderName: "Alice",
		Text:       "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", confirmed.ID)
}

func TestChatService_Send_RecipientResolutionFailureSkipsFanout(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.messageRepo.EXPECT().
		Add(ctx, mock.Anything).
		Return(confirmedMessage("m1"), nil)

	fx.salonRepo.EXPECT().
		OtherParticipant(ctx, "salon-1", "user-1").
		Return("", repository.ErrSalonNotFound)

	confirmed, err := fx.service.Send(ctx, usecase.SendMessageInput{
		SalonID:    "salon-1",
		SenderID:   "user-1",
		SenderName: "Alice",
		Text:       "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", confirmed.ID)
}

func TestChatService_SendMergesIntoOpenSalon(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	var onSnapshot func([]entity.Message)
	fx.messageRepo.EXPECT().
		Subscribe(ctx, "salon-1", mock.Anything, mock.Anything).
		RunAndReturn(func(
			_ context.Context,
			_ string,
			snapshotCb func([]entity.Message),
			_ func(error),
		) (repository.Unsubscribe, error) {
			onSnapshot = snapshotCb

			return func() {}, nil
		})

	var updates [][]entity.Message
	session, err := fx.service.OpenSalon(ctx, "salon-1",
		func(messages []entity.Message) { updates = append(updates, messages) },
		func(error) {},
	)
	require.NoError(t, err)
	defer session.Close()

	onSnapshot(nil)
	require.Len(t, updates, 1)
	assert.Empty(t, updates[0])

	fx.messageRepo.EXPECT().
		Add(ctx, mock.Anything).
		Return(confirmedMessage("m1"), nil)
	fx.salonRepo.EXPECT().
		OtherParticipant(ctx, "salon-1", "user-1").
		Return("user-2", nil)
	fx.dispatcher.EXPECT().
		SendDirectMessage(ctx, "user-2", mock.Anything).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMessageEvent(ctx, mock.Anything).
		Return(nil)

	_, err = fx.service.Send(ctx, usecase.SendMessageInput{
		SalonID:    "salon-1",
		SenderID:   "user-1",
		SenderName: "Alice",
		Text:       "hello",
	})
	require.NoError(t, err)

	// The sender sees the message before any snapshot round-trip.
	require.Len(t, updates, 2)
	assert.Equal(t, []string{"m1"}, ids(updates[1]))
	assert.Equal(t, []string{"m1"}, ids(session.Messages()))

	// The echoing snapshot does not duplicate it.
	onSnapshot([]entity.Message{*confirmedMessage("m1")})
	require.Len(t, updates, 3)
	assert.Equal(t, []string{"m1"}, ids(updates[2]))
}

func TestChatService_ClosedSessionStopsReceivingSends(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.messageRepo.EXPECT().
		Subscribe(ctx, "salon-1", mock.Anything, mock.Anything).
		Return(repository.Unsubscribe(func() {}), nil)

	var updates int
	session, err := fx.service.OpenSalon(ctx, "salon-1",
		func([]entity.Message) { updates++ },
		func(error) {},
	)
	require.NoError(t, err)

	session.Close()
	session.Close()

	fx.messageRepo.EXPECT().
		Add(ctx, mock.Anything).
		Return(confirmedMessage("m1"), nil)
	fx.salonRepo.EXPECT().
		OtherParticipant(ctx, "salon-1", "user-1").
		Return("user-2", nil)
	fx.dispatcher.EXPECT().
		SendDirectMessage(ctx, "user-2", mock.Anything).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMessageEvent(ctx, mock.Anything).
		Return(nil)

	_, err = fx.service.Send(ctx, usecase.SendMessageInput{
		SalonID:    "salon-1",
		SenderID:   "user-1",
		SenderName: "Alice",
		Text:       "hello",
	})
	require.NoError(t, err)

	assert.Zero(t, updates)
}
