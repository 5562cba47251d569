package auth

import "context"

// Identity is what a provider reports about an authenticated user. UserID
// is only set by the local provider; remote providers identify by email.
type Identity struct {
	UserID uint
	Email  string
}

// Gateway is the authentication provider contract: sign-in, sign-up and
// sign-out, each either succeeding or failing with a human-readable
// message. The rest of the system consumes nothing beyond the outcome; the
// session token is minted locally after the provider accepts.
type Gateway interface {
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignUp(ctx context.Context, email, password string) (Identity, error)
	SignOut(ctx context.Context) error
}
