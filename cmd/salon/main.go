package main

import (
	"context"
	"log/slog"
	"os"

	"salon/config"
	"salon/internal/delivery"
	"salon/internal/delivery/http"
	"salon/internal/delivery/http/router/handler"
	"salon/internal/domain/service"
	"salon/internal/infra/connectivity"
	"salon/internal/infra/entitlement"
	"salon/internal/infra/firebase"
	"salon/internal/infra/identity"
	logs "salon/internal/infra/log"
	"salon/internal/infra/notification"
	"salon/internal/infra/persistence/firestore"
	"salon/internal/infra/pubsub"
	"salon/internal/usecase"
	"salon/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			registerSessionShutdown,
			startServer,
		),
	).Run()
}

// registerSessionShutdown detaches the session machine from the identity
// provider on shutdown and waits for in-flight background writes.
func registerSessionShutdown(lc fx.Lifecycle, session usecase.SessionUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			session.Close()

			return nil
		},
	})
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewAuthClient,
		firebase.NewFirestoreClient,
		firebase.NewMessagingClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProfileRepository,
			firestore.NewMessageRepository,
			firestore.NewSalonRepository,
			firestore.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewProvider,
			asIdentityProvider,
			asSessionFeed,
			notification.NewFCMDispatcher,
			entitlement.NewClient,
			connectivity.NewMonitor,
			pubsub.NewEventPublisher,
		),
	)
}

// asIdentityProvider exposes the identity provider under its consumer-facing
// contract for injection.
func asIdentityProvider(provider *identity.Provider) service.IdentityProvider {
	return provider
}

// asSessionFeed exposes the identity provider's transport-facing side.
func asSessionFeed(provider *identity.Provider) service.SessionFeed {
	return provider
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountChecker,
			impl.NewAuthStateMachine,
			impl.NewChatService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewMessageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
