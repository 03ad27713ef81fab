package authz

import (
	"context"
	"errors"

	"github.com/tuanle-dev/table-management/pkg/permissions"
	"github.com/tuanle-dev/table-management/pkg/tokens"
)

// Reason explains a deny verdict.
type Reason string

const (
	ReasonMissingToken Reason = "MISSING_TOKEN"
	ReasonInvalidToken Reason = "INVALID_TOKEN"
	ReasonTokenExpired Reason = "TOKEN_EXPIRED"
	ReasonUserNotFound Reason = "USER_NOT_FOUND"
	ReasonForbidden    Reason = "FORBIDDEN"
)

// Decision is the allow/deny verdict for one request.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason,omitempty"`
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r Reason) Decision { return Decision{Allowed: false, Reason: r} }

// ErrUserNotFound is returned by UserDirectory implementations when no
// live user exists for the subject.
var ErrUserNotFound = errors.New("user not found")

// Account is the projection of a user the decision needs.
type Account struct {
	Username string
	Role     permissions.Role
}

// UserDirectory looks up live (not soft-deleted) users by username.
type UserDirectory interface {
	FindActiveByUsername(ctx context.Context, username string) (*Account, error)
}

// Decider computes an authorization decision for one request. It is
// implemented locally by Service and remotely by authclient.Client, so
// a filter behaves identically in both deployments.
type Decider interface {
	Authorize(ctx context.Context, token, method, path string) (Decision, error)
}

// Service decides whether a request may proceed. The decision is a pure
// function of (token-or-absent, method, path) over the fixed catalog
// and the user directory; there is no mutable state.
type Service struct {
	Codec   *tokens.Codec
	Users   UserDirectory
	Catalog *permissions.Catalog
}

// Authorize walks anonymous permissions, token validity and role
// permissions in that order. The returned error is reserved for
// infrastructure failures (directory round trips); every auth outcome
// is expressed in the Decision.
func (s *Service) Authorize(ctx context.Context, token, method, path string) (Decision, error) {
	path = permissions.NormalizePath(path)

	if s.Catalog.Allows(permissions.RoleAnonymous, method, path) {
		return allow(), nil
	}

	if token == "" {
		return deny(ReasonMissingToken), nil
	}

	claims, err := s.Codec.Parse(token)
	if err != nil {
		if errors.Is(err, tokens.ErrExpired) {
			return deny(ReasonTokenExpired), nil
		}
		return deny(ReasonInvalidToken), nil
	}

	account, err := s.Users.FindActiveByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return deny(ReasonUserNotFound), nil
		}
		return Decision{}, err
	}

	if s.Catalog.Allows(account.Role, method, path) {
		return allow(), nil
	}
	return deny(ReasonForbidden), nil
}
