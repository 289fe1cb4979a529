// internal/domain/order/requester.go
package order

import "github.com/google/uuid"

// Requester identifies who is acting on orders. The zero value is a guest.
type Requester struct {
	userID        uuid.UUID
	authenticated bool
}

// Guest returns an anonymous requester
func Guest() Requester {
	return Requester{}
}

// Authenticated returns a requester for a signed-in user
func Authenticated(userID uuid.UUID) Requester {
	return Requester{userID: userID, authenticated: true}
}

// UserID returns the signed-in user id, if any
func (r Requester) UserID() (uuid.UUID, bool) {
	return r.userID, r.authenticated
}

// IsAuthenticated reports whether a user is signed in
func (r Requester) IsAuthenticated() bool {
	return r.authenticated
}
