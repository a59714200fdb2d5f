package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon/internal/domain/entity"
	domainerrors "salon/internal/domain/errors"
	"salon/internal/domain/repository"
	"salon/internal/domain/service"
	"salon/internal/errors"
	"salon/internal/usecase"
)

// authStateMachine is the session consistency engine. It subscribes to the
// identity provider and, on every event, re-enters StateUnknown and
// re-evaluates the session from scratch through the account checker.
//
// Evaluations are serialized by a single mutex and stamped with a generation
// counter: a stale evaluation that somehow finishes after a newer event can
// never clobber the newer state.
type authStateMachine struct {
	logger       *slog.Logger
	identity     service.IdentityProvider
	entitlements service.EntitlementService
	checker      *AccountChecker
	profiles     repository.ProfileRepository
	now          func() time.Time

	evalMu sync.Mutex // serializes per-event evaluation

	stateMu      sync.RWMutex
	state        entity.SessionState
	publishedGen uint64

	subsMu  sync.Mutex
	subs    map[int]func(entity.SessionState)
	nextSub int

	generation uint64 // guarded by evalMu

	unsubscribe func()
	closeOnce   sync.Once
	touchWG     sync.WaitGroup
}

// NewAuthStateMachine constructs the machine and immediately attaches it to
// the identity provider. The caller owns the returned usecase and must Close
// it on teardown.
func NewAuthStateMachine(
	logger *slog.Logger,
	identity service.IdentityProvider,
	checker *AccountChecker,
	entitlements service.EntitlementService,
	profiles repository.ProfileRepository,
) usecase.SessionUsecase {
	m := &authStateMachine{
		logger:       logger,
		identity:     identity,
		entitlements: entitlements,
		checker:      checker,
		profiles:     profiles,
		now:          time.Now,
		subs:         make(map[int]func(entity.SessionState)),
		state: entity.SessionState{
			State:   entity.StateUnknown,
			Loading: true,
		},
	}
	m.unsubscribe = identity.OnAuthChange(m.handleAuthChange)

	return m
}

// Snapshot returns the current derived session state.
func (m *authStateMachine) Snapshot() entity.SessionState {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()

	return m.state
}

// OnStateChange registers a state callback. The unsubscribe is idempotent.
func (m *authStateMachine) OnStateChange(callback func(entity.SessionState)) func() {
	m.subsMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = callback
	m.subsMu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			m.subsMu.Lock()
			delete(m.subs, id)
			m.subsMu.Unlock()
		})
	}
}

// Close detaches from the identity provider and waits for in-flight
// background writes. Idempotent.
func (m *authStateMachine) Close() {
	m.closeOnce.Do(func() {
		m.unsubscribe()
		m.touchWG.Wait()
	})
}

// handleAuthChange is the identity provider callback. Every event starts a
// fresh evaluation under the evaluation mutex.
func (m *authStateMachine) handleAuthChange(principal *entity.Principal) {
	m.evalMu.Lock()
	defer m.evalMu.Unlock()

	m.generation++
	gen := m.generation

	if principal == nil {
		m.handleSignedOut(gen)

		return
	}

	m.publish(gen, entity.SessionState{
		State:       entity.StateUnknown,
		Loading:     true,
		PrincipalID: principal.ID,
	})
	m.evaluate(gen, principal)
}

// handleSignedOut reacts to a nil principal: clear entitlements, report
// unauthenticated, resolve loading. No provider sign-out is needed, the
// provider already knows.
func (m *authStateMachine) handleSignedOut(gen uint64) {
	if err := m.entitlements.LogOut(context.Background()); err != nil {
		m.logger.Warn("entitlement logout failed", slog.Any("error", err))
	}

	m.publish(gen, entity.SessionState{
		State: entity.StateUnauthenticated,
	})
}

// evaluate runs the account checker for one provider event and maps its
// verdict onto the session state. loading always resolves, including on
// failure, so consumers are never stuck.
func (m *authStateMachine) evaluate(gen uint64, principal *entity.Principal) {
	ctx := context.Background()

	verdict, err := m.checker.Check(ctx, principal)
	if err != nil {
		m.handleCheckFailure(ctx, gen, principal, err)

		return
	}

	switch verdict {
	case entity.VerdictAuthenticated:
		m.publish(gen, entity.SessionState{
			State:         entity.StateAuthenticated,
			Authenticated: true,
			PrincipalID:   principal.ID,
		})
		// The lastLogin touch must never block resolution of loading.
		m.touchLastLogin(principal.ID)

	case entity.VerdictAuthenticatedIncompleteOnboarding:
		m.publish(gen, entity.SessionState{
			State:              entity.StatePendingOnboarding,
			Authenticated:      true,
			OnboardingRequired: true,
			PrincipalID:        principal.ID,
		})

	case entity.VerdictNewAccountPending:
		// Unauthenticated until onboarding finishes, but routed to the
		// onboarding flow rather than rejected.
		m.publish(gen, entity.SessionState{
			State:              entity.StatePendingOnboarding,
			OnboardingRequired: true,
			PrincipalID:        principal.ID,
		})

	case entity.VerdictRejectedCorrupted, entity.VerdictRejectedDeleted:
		m.logger.Warn("account rejected, forcing logout",
			slog.String("principal_id", principal.ID),
			slog.String("verdict", verdict.String()),
		)
		m.defensiveLogout(ctx, principal.ID)
		m.publish(gen, entity.SessionState{
			State: entity.StateUnauthenticated,
		})
	}
}

// handleCheckFailure fails closed. Permission-denied and unavailable store
// errors are security-relevant and force a full logout; any other failure
// reports unauthenticated but leaves the provider session intact.
func (m *authStateMachine) handleCheckFailure(ctx context.Context, gen uint64, principal *entity.Principal, err error) {
	m.logger.Error("account verification failed",
		slog.String("principal_id", principal.ID),
		slog.Any("error", err),
	)

	if errors.Is(err, domainerrors.ErrPermissionDenied) || errors.Is(err, domainerrors.ErrServiceUnavailable) {
		m.defensiveLogout(ctx, principal.ID)
	}

	m.publish(gen, entity.SessionState{
		State: entity.StateUnauthenticated,
	})
}

// defensiveLogout revokes the provider session and clears entitlements.
// Failures are logged only: the machine still reports unauthenticated.
func (m *authStateMachine) defensiveLogout(ctx context.Context, principalID string) {
	if err := m.identity.SignOut(ctx, principalID); err != nil {
		m.logger.Warn("provider sign-out failed",
			slog.String("principal_id", principalID),
			slog.Any("error", err),
		)
	}
	if err := m.entitlements.LogOut(ctx); err != nil {
		m.logger.Warn("entitlement logout failed",
			slog.String("principal_id", principalID),
			slog.Any("error", err),
		)
	}
}

// touchLastLogin records the login asynchronously. The write may race the
// next evaluation; it only ever touches the lastLogin field.
func (m *authStateMachine) touchLastLogin(principalID string) {
	m.touchWG.Add(1)
	go func() {
		defer m.touchWG.Done()

		fields := map[string]any{"lastLogin": m.now()}
		if err := m.profiles.Update(context.Background(), principalID, fields); err != nil {
			m.logger.Warn("lastLogin touch failed",
				slog.String("principal_id", principalID),
				slog.Any("error", err),
			)
		}
	}()
}

// publish installs the state for the given generation and notifies
// subscribers. A publish stamped with an older generation than the one
// already installed is dropped: last event wins.
func (m *authStateMachine) publish(gen uint64, next entity.SessionState) {
	m.stateMu.Lock()
	if gen < m.publishedGen {
		m.stateMu.Unlock()

		return
	}
	m.publishedGen = gen
	m.state = next
	m.stateMu.Unlock()

	m.subsMu.Lock()
	callbacks := make([]func(entity.SessionState), 0, len(m.subs))
	for _, cb := range m.subs {
		callbacks = append(callbacks, cb)
	}
	m.subsMu.Unlock()

	for _, cb := range callbacks {
		cb(next)
	}
}
