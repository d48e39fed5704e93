package ports

import "context"

// AuthService issues and validates simulated bearer tokens.
type AuthService interface {
	// Login validates credential shapes, then authenticates against the
	// store. On success it returns a token of the form
	// token_<userId>_<epochMillis>, guaranteed parseable by ParseToken.
	Login(ctx context.Context, email, password string) (string, error)

	// ParseToken returns the user id encoded in a raw token. It fails
	// with ErrMalformedToken when the token does not match the expected
	// shape and ErrUnknownTokenUser when the id does not resolve to an
	// existing user. No cryptographic verification is performed.
	ParseToken(ctx context.Context, raw string) (int, error)
}
