package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"salon/config"
	"salon/internal/domain/entity"
	domainerrors "salon/internal/domain/errors"
	"salon/internal/domain/repository"
	mockRepo "salon/internal/mocks/repository"
	mockService "salon/internal/mocks/service"
	"salon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeIdentityProvider is a controllable identity source: tests push
// principal events through emit and observe defensive sign-outs.
type fakeIdentityProvider struct {
	mu           sync.Mutex
	callback     func(*entity.Principal)
	signOuts     []string
	signOutErr   error
	unsubscribed int
}

func (f *fakeIdentityProvider) OnAuthChange(callback func(*entity.Principal)) func() {
	f.mu.Lock()
	f.callback = callback
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		f.unsubscribed++
		f.mu.Unlock()
	}
}

func (f *fakeIdentityProvider) SignOut(_ context.Context, principalID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOuts = append(f.signOuts, principalID)

	return f.signOutErr
}

func (f *fakeIdentityProvider) emit(principal *entity.Principal) {
	f.mu.Lock()
	callback := f.callback
	f.mu.Unlock()
	callback(principal)
}

func (f *fakeIdentityProvider) signedOut() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.signOuts...)
}

// stateRecorder collects every published state in order.
type stateRecorder struct {
	mu     sync.Mutex
	states []entity.SessionState
}

func (r *stateRecorder) record(state entity.SessionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *stateRecorder) all() []entity.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.SessionState(nil), r.states...)
}

// authMachineFixtures holds all test dependencies for state machine tests.
type authMachineFixtures struct {
	machine      usecase.SessionUsecase
	identity     *fakeIdentityProvider
	profileRepo  *mockRepo.MockProfileRepository
	entitlements *mockService.MockEntitlementService
	recorder     *stateRecorder
}

func createTestAuthMachine(t *testing.T) authMachineFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	entitlements := mockService.NewMockEntitlementService(t)
	identity := &fakeIdentityProvider{}
	checker := NewAccountChecker(&config.Config{}, profileRepo, discardLogger())

	machine := NewAuthStateMachine(discardLogger(), identity, checker, entitlements, profileRepo)
	t.Cleanup(machine.Close)

	recorder := &stateRecorder{}
	machine.OnStateChange(recorder.record)

	return authMachineFixtures{
		machine:      machine,
		identity:     identity,
		profileRepo:  profileRepo,
		entitlements: entitlements,
		recorder:     recorder,
	}
}

func TestAuthStateMachine_InitialStateIsLoading(t *testing.T) {
	fx := createTestAuthMachine(t)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StateUnknown, state.State)
	assert.True(t, state.Loading)
	assert.False(t, state.Authenticated)
}

func TestAuthStateMachine_ValidProfileAuthenticates(t *testing.T) {
	fx := createTestAuthMachine(t)

	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-1").
		Return(&entity.ProfileDocument{
			OnboardingCompleted: true,
			Username:            "alice",
			Email:               "alice@example.com",
		}, nil)

	fx.profileRepo.EXPECT().
		Update(mock.Anything, "user-1", mock.MatchedBy(func(fields map[string]any) bool {
			_, ok := fields["lastLogin"]
			return ok && len(fields) == 1
		})).
		Return(nil).
		Once()

	fx.identity.emit(principal)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StateAuthenticated, state.State)
	assert.True(t, state.Authenticated)
	assert.False(t, state.Loading)
	assert.Equal(t, "user-1", state.PrincipalID)

	// Close waits for the async lastLogin write before the mock asserts.
	fx.machine.Close()

	states := fx.recorder.all()
	require.GreaterOrEqual(t, len(states), 2)
	assert.Equal(t, entity.StateUnknown, states[0].State)
	assert.True(t, states[0].Loading)
	assert.Equal(t, entity.StateAuthenticated, states[len(states)-1].State)
}

func TestAuthStateMachine_IncompleteOnboarding(t *testing.T) {
	fx := createTestAuthMachine(t)

	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-1").
		Return(&entity.ProfileDocument{OnboardingCompleted: false}, nil)

	fx.identity.emit(principal)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StatePendingOnboarding, state.State)
	assert.True(t, state.Authenticated)
	assert.True(t, state.OnboardingRequired)
	assert.False(t, state.Loading)
}

func TestAuthStateMachine_NewAccountRoutedToOnboarding(t *testing.T) {
	fx := createTestAuthMachine(t)

	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now()}

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Create(mock.Anything, "user-1", mock.Anything).
		Return(nil).
		Once()

	fx.identity.emit(principal)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StatePendingOnboarding, state.State)
	assert.False(t, state.Authenticated)
	assert.True(t, state.OnboardingRequired)
	assert.Empty(t, fx.identity.signedOut())
}

func TestAuthStateMachine_DeletedAccountForcesLogout(t *testing.T) {
	fx := createTestAuthMachine(t)

	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	fx.entitlements.EXPECT().
		LogOut(mock.Anything).
		Return(nil).
		Once()

	fx.identity.emit(principal)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StateUnauthenticated, state.State)
	assert.False(t, state.Authenticated)
	assert.Equal(t, []string{"user-1"}, fx.identity.signedOut())
}

func TestAuthStateMachine_CorruptedProfileForcesLogout(t *testing.T) {
	fx := createTestAuthMachine(t)

	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-1").
		Return(&entity.ProfileDocument{
			OnboardingCompleted: true,
			Email:               "alice@example.com",
		}, nil)

	fx.entitlements.EXPECT().
		LogOut(mock.Anything).
		Return(nil).
		Once()

	fx.identity.emit(principal)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StateUnauthenticated, state.State)
	assert.Equal(t, []string{"user-1"}, fx.identity.signedOut())
}

func TestAuthStateMachine_AmbiguousErrorFailsClosedWithoutSignOut(t *testing.T) {
	fx := createTestAuthMachine(t)

	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-1").
		Return(nil, errors.New("connection reset"))

	fx.identity.emit(principal)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StateUnauthenticated, state.State)
	assert.False(t, state.Loading)

	// The provider session stays intact on an unclassified failure.
	assert.Empty(t, fx.identity.signedOut())
}

func TestAuthStateMachine_PermissionDeniedForcesLogout(t *testing.T) {
	fx := createTestAuthMachine(t)

	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-1").
		Return(nil, errors.Wrap(domainerrors.ErrPermissionDenied, "rules rejected read"))

	fx.entitlements.EXPECT().
		LogOut(mock.Anything).
		Return(nil).
		Once()

	fx.identity.emit(principal)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StateUnauthenticated, state.State)
	assert.Equal(t, []string{"user-1"}, fx.identity.signedOut())
}

func TestAuthStateMachine_NilPrincipalClearsEntitlements(t *testing.T) {
	fx := createTestAuthMachine(t)

	fx.entitlements.EXPECT().
		LogOut(mock.Anything).
		Return(nil).
		Once()

	fx.identity.emit(nil)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StateUnauthenticated, state.State)
	assert.Empty(t, fx.identity.signedOut())
}

func TestAuthStateMachine_RapidEventsLastOneWins(t *testing.T) {
	fx := createTestAuthMachine(t)

	first := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}
	second := &entity.Principal{ID: "user-2", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-1").
		Return(&entity.ProfileDocument{OnboardingCompleted: false}, nil)

	fx.profileRepo.EXPECT().
		Get(mock.Anything, "user-2").
		Return(&entity.ProfileDocument{
			OnboardingCompleted: true,
			Username:            "bob",
			PhoneNumber:         "+33612345678",
		}, nil)

	fx.profileRepo.EXPECT().
		Update(mock.Anything, "user-2", mock.Anything).
		Return(nil)

	fx.identity.emit(first)
	fx.identity.emit(second)

	state := fx.machine.Snapshot()
	assert.Equal(t, entity.StateAuthenticated, state.State)
	assert.Equal(t, "user-2", state.PrincipalID)

	fx.machine.Close()
}

func TestAuthStateMachine_UnsubscribeStopsCallbacks(t *testing.T) {
	fx := createTestAuthMachine(t)

	extra := &stateRecorder{}
	unsubscribe := fx.machine.OnStateChange(extra.record)
	unsubscribe()
	unsubscribe()

	fx.entitlements.EXPECT().
		LogOut(mock.Anything).
		Return(nil)

	fx.identity.emit(nil)

	assert.Empty(t, extra.all())
	assert.NotEmpty(t, fx.recorder.all())
}

func TestAuthStateMachine_CloseIsIdempotent(t *testing.T) {
	fx := createTestAuthMachine(t)

	fx.machine.Close()
	fx.machine.Close()

	fx.identity.mu.Lock()
	unsubscribed := fx.identity.unsubscribed
	fx.identity.mu.Unlock()
	assert.Equal(t, 1, unsubscribed)
}
