package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon/config"
	"salon/internal/domain/entity"
	domainerrors "salon/internal/domain/errors"
	"salon/internal/domain/repository"
	mockRepo "salon/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// accountCheckerFixtures holds all test dependencies for account checker tests.
type accountCheckerFixtures struct {
	checker     *AccountChecker
	profileRepo *mockRepo.MockProfileRepository
}

func createTestAccountChecker(t *testing.T) accountCheckerFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	checker := NewAccountChecker(&config.Config{}, profileRepo, discardLogger())

	return accountCheckerFixtures{
		checker:     checker,
		profileRepo: profileRepo,
	}
}

func TestEvaluateAccount(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	grace := 5 * time.Minute

	oldPrincipal := &entity.Principal{ID: "user-1", CreationTime: now.Add(-time.Hour)}
	freshPrincipal := &entity.Principal{ID: "user-2", CreationTime: now.Add(-time.Minute)}

	tests := []struct {
		name      string
		principal *entity.Principal
		doc       *entity.ProfileDocument
		want      entity.Verdict
	}{
		{
			name:      "complete onboarded profile",
			principal: oldPrincipal,
			doc: &entity.ProfileDocument{
				OnboardingCompleted: true,
				Username:            "alice",
				Email:               "alice@example.com",
			},
			want: entity.VerdictAuthenticated,
		},
		{
			name:      "phone number satisfies the contact requirement",
			principal: oldPrincipal,
			doc: &entity.ProfileDocument{
				OnboardingCompleted: true,
				Username:            "alice",
				PhoneNumber:         "+33123456789",
			},
			want: entity.VerdictAuthenticated,
		},
		{
			name:      "onboarding still in progress",
			principal: oldPrincipal,
			doc:       &entity.ProfileDocument{OnboardingCompleted: false},
			want:      entity.VerdictAuthenticatedIncompleteOnboarding,
		},
		{
			name:      "onboarded but missing username",
			principal: oldPrincipal,
			doc: &entity.ProfileDocument{
				OnboardingCompleted: true,
				Email:               "alice@example.com",
			},
			want: entity.VerdictRejectedCorrupted,
		},
		{
			name:      "onboarded but no contact field",
			principal: oldPrincipal,
			doc: &entity.ProfileDocument{
				OnboardingCompleted: true,
				Username:            "alice",
			},
			want: entity.VerdictRejectedCorrupted,
		},
		{
			name:      "missing document within grace period",
			principal: freshPrincipal,
			doc:       nil,
			want:      entity.VerdictNewAccountPending,
		},
		{
			name:      "missing document past grace period",
			principal: oldPrincipal,
			doc:       nil,
			want:      entity.VerdictRejectedDeleted,
		},
		{
			name:      "missing document exactly at the grace boundary",
			principal: &entity.Principal{ID: "user-3", CreationTime: now.Add(-grace)},
			doc:       nil,
			want:      entity.VerdictRejectedDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateAccount(tt.principal, tt.doc, now, grace)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountChecker_Check_ExistingProfile(t *testing.T) {
	fx := createTestAccountChecker(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(&entity.ProfileDocument{
			OnboardingCompleted: true,
			Username:            "alice",
			Email:               "alice@example.com",
		}, nil)

	verdict, err := fx.checker.Check(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictAuthenticated, verdict)
}

func TestAccountChecker_Check_NewAccountCreatesProfile(t *testing.T) {
	fx := createTestAccountChecker(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now()}

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Create(ctx, "user-1", mock.MatchedBy(func(doc *entity.ProfileDocument) bool {
			return !doc.OnboardingCompleted && !doc.CreatedAt.IsZero()
		})).
		Return(nil).
		Once()

	verdict, err := fx.checker.Check(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictNewAccountPending, verdict)
}

func TestAccountChecker_Check_CreateFailureSurfaces(t *testing.T) {
	fx := createTestAccountChecker(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now()}

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Create(ctx, "user-1", mock.Anything).
		Return(errors.New("write failed"))

	_, err := fx.checker.Check(ctx, principal)
	require.Error(t, err)
}

func TestAccountChecker_Check_ClassifiedStoreErrorPassesThrough(t *testing.T) {
	fx := createTestAccountChecker(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: "user-1", CreationTime: time.Now().Add(-time.Hour)}

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(nil, errors.Wrap(domainerrors.ErrPermissionDenied, "rules rejected read"))

	_, err := fx.checker.Check(ctx, principal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}
