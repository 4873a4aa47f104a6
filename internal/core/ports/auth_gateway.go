package ports

import "context"

// RegisterInput carries the fields forwarded to the upstream registration
// endpoint. The portal never hashes or inspects the password.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Address   string
}

// AuthGateway is the remote authentication collaborator. Token issuance and
// verification are entirely the upstream's concern; the portal only carries
// the bearer token it is handed.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (token string, err error)
	// Register creates an account. The upstream issues no session on
	// registration; the user logs in afterwards.
	Register(ctx context.Context, in RegisterInput) error
}
