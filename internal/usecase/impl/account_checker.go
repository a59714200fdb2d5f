// Package impl contains the application-specific business rules
// implementations: the session consistency engine and the realtime message
// synchronization engine.
package impl

import (
	"context"
	"log/slog"
	"time"

	"salon/config"
	"salon/internal/domain/entity"
	"salon/internal/domain/repository"
	"salon/internal/errors"
)

// AccountChecker reconciles a principal against its profile document and
// produces a verdict. Evaluation itself is pure; Check adds the store fetch
// and the single allowed side effect, the defensive creation of a profile
// document for brand-new principals.
type AccountChecker struct {
	profiles    repository.ProfileRepository
	gracePeriod time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// NewAccountChecker is the constructor for AccountChecker.
func NewAccountChecker(
	cfg *config.Config,
	profiles repository.ProfileRepository,
	logger *slog.Logger,
) *AccountChecker {
	return &AccountChecker{
		profiles:    profiles,
		gracePeriod: cfg.NewAccountGracePeriod(),
		now:         time.Now,
		logger:      logger,
	}
}

// EvaluateAccount is the pure decision function behind the checker.
//
// Rules, in order:
//  1. An existing document violating the completeness invariant is
//     corrupted.
//  2. An existing valid document authenticates the session; incomplete
//     onboarding is a sub-status, not a rejection.
//  3. An absent document within the grace period is a registration race: a
//     brand-new account whose onboarding flow has not written yet.
//  4. An absent document past the grace period means the record vanished
//     deliberately.
func EvaluateAccount(
	principal *entity.Principal,
	doc *entity.ProfileDocument,
	now time.Time,
	gracePeriod time.Duration,
) entity.Verdict {
	if doc != nil {
		if !doc.Valid() {
			return entity.VerdictRejectedCorrupted
		}
		if doc.OnboardingCompleted {
			return entity.VerdictAuthenticated
		}

		return entity.VerdictAuthenticatedIncompleteOnboarding
	}

	if principal.Age(now) < gracePeriod {
		return entity.VerdictNewAccountPending
	}

	return entity.VerdictRejectedDeleted
}

// Check fetches the principal's profile document and evaluates it. For a
// VerdictNewAccountPending it creates the fresh document before returning.
// Store errors come back classified by the repository layer (permission
// denied, service unavailable) so the state machine can decide whether a
// defensive logout is warranted.
func (c *AccountChecker) Check(ctx context.Context, principal *entity.Principal) (entity.Verdict, error) {
	doc, err := c.profiles.Get(ctx, principal.ID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrProfileNotFound):
		doc = nil
	default:
		return entity.VerdictRejectedDeleted, errors.Wrap(err, "fetch profile document")
	}

	verdict := EvaluateAccount(principal, doc, c.now(), c.gracePeriod)
	c.logger.Debug("account consistency verdict",
		slog.String("principal_id", principal.ID),
		slog.String("verdict", verdict.String()),
	)

	if verdict == entity.VerdictNewAccountPending {
		fresh := &entity.ProfileDocument{
			OnboardingCompleted: false,
			CreatedAt:           c.now(),
		}
		if err := c.profiles.Create(ctx, principal.ID, fresh); err != nil {
			return entity.VerdictNewAccountPending, errors.Wrap(err, "create profile document")
		}
		c.logger.Info("created profile document for new account",
			slog.String("principal_id", principal.ID),
		)
	}

	return verdict, nil
}
