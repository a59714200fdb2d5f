package service

import "context"

// EntitlementService is the external payment/entitlement system. LogOut is
// invoked whenever the identity provider reports logged-out or the
// consistency checker rejects an account.
type EntitlementService interface {
	LogOut(ctx context.Context) error
}
