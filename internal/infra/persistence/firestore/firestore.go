// Package firestore implements the repository contracts on Cloud Firestore.
package firestore

import (
	domainerrors "salon/internal/domain/errors"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection    = "users"
	messagesCollection = "messages"
	salonsCollection   = "salons"
	devicesCollection  = "devices"
)

// classifyStoreError maps gRPC store failures onto the domain taxonomy. The
// session consistency engine treats permission-denied and unavailable as
// security-relevant; everything else passes through as an ambiguous failure.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.PermissionDenied:
		return errors.Wrap(domainerrors.ErrPermissionDenied, err.Error())
	case codes.Unavailable, codes.DeadlineExceeded:
		return errors.Wrap(domainerrors.ErrServiceUnavailable, err.Error())
	default:
		return err
	}
}

// isNotFound reports whether the error is a document-missing condition.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isAlreadyExists reports whether the error is a create-collision condition.
func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
