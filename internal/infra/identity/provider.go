// Package identity adapts Firebase Auth to the IdentityProvider contract.
// The delivery layer pushes verified credentials through the SessionFeed
// side; subscribers observe the resulting principal changes.
package identity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon/internal/domain/entity"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// Provider implements service.IdentityProvider and service.SessionFeed on
// top of the Firebase Auth Admin SDK.
type Provider struct {
	client *auth.Client
	logger *slog.Logger

	mu      sync.Mutex
	subs    map[int]func(*entity.Principal)
	nextSub int
	current *entity.Principal
}

// NewProvider is the constructor for Provider.
func NewProvider(client *auth.Client, logger *slog.Logger) *Provider {
	return &Provider{
		client: client,
		logger: logger,
		subs:   make(map[int]func(*entity.Principal)),
	}
}

// OnAuthChange registers a callback for principal changes. The callback is
// invoked immediately with the current principal so late subscribers do not
// miss the session they joined into. The unsubscribe is idempotent.
func (p *Provider) OnAuthChange(callback func(*entity.Principal)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = callback
	current := p.current
	p.mu.Unlock()

	callback(current)

	var once sync.Once

	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// SignOut revokes all refresh tokens of the principal, invalidating its
// provider sessions.
func (p *Provider) SignOut(ctx context.Context, principalID string) error {
	if err := p.client.RevokeRefreshTokens(ctx, principalID); err != nil {
		return errors.Wrapf(err, "revoke refresh tokens for %s", principalID)
	}

	p.mu.Lock()
	if p.current != nil && p.current.ID == principalID {
		p.current = nil
	}
	p.mu.Unlock()

	return nil
}

// AuthenticateToken verifies a Firebase ID token, loads the user record for
// its creation time, and emits the principal to all subscribers.
func (p *Provider) AuthenticateToken(ctx context.Context, idToken string) (*entity.Principal, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	record, err := p.client.GetUser(ctx, token.UID)
	if err != nil {
		return nil, errors.Wrapf(err, "load user record for %s", token.UID)
	}

	principal := &entity.Principal{
		ID:           record.UID,
		CreationTime: time.UnixMilli(record.UserMetadata.CreationTimestamp),
	}

	p.logger.Debug("principal authenticated", slog.String("principal_id", principal.ID))
	p.emit(principal)

	return principal, nil
}

// ClearSession emits a nil principal to all subscribers.
func (p *Provider) ClearSession() {
	p.logger.Debug("session cleared")
	p.emit(nil)
}

func (p *Provider) emit(principal *entity.Principal) {
	p.mu.Lock()
	p.current = principal
	callbacks := make([]func(*entity.Principal), 0, len(p.subs))
	for _, cb := range p.subs {
		callbacks = append(callbacks, cb)
	}
	p.mu.Unlock()

	for _, cb := range callbacks {
		cb(principal)
	}
}
