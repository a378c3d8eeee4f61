package inkwell

import "context"

// Owns reports whether the identity may mutate a resource owned by ownerID.
// Ownership is the only authorization axiom: no roles, no admin override. The
// predicate is evaluated fresh on every mutating request and never cached.
func Owns(identity Identity, ownerID int64) bool {
	if identity == nil {
		return false
	}
	return identity.ID() == ownerID
}

// RequireOwnership returns ErrNotResourceOwner when the identity does not own
// the resource. Callers must confirm the resource exists first so a denial
// never stands in for not-found.
func RequireOwnership(identity Identity, ownerID int64) error {
	if !Owns(identity, ownerID) {
		return ErrNotResourceOwner
	}
	return nil
}

// CanModifyFromContext applies the ownership rule to the identity bound to the
// request context. Unauthenticated contexts are always denied.
func CanModifyFromContext(ctx context.Context, ownerID int64) bool {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return false
	}
	return Owns(identity, ownerID)
}
