package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

// AuthService implements login, registration forwarding, and logout against
// the remote auth collaborator. It owns the session lifecycle: a successful
// login decodes the issued token's claims (without verifying the signature —
// verification is the upstream's job), maps the numeric role id through the
// injected role table, and persists the session state.
type AuthService struct {
	gateway  ports.AuthGateway
	sessions ports.SessionStore
	roles    domain.RoleTable
	log      zerolog.Logger
}

func NewAuthService(gateway ports.AuthGateway, sessions ports.SessionStore, roles domain.RoleTable, log zerolog.Logger) *AuthService {
	return &AuthService{gateway: gateway, sessions: sessions, roles: roles, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	sess := s.sessionFromToken(token, email)
	id, err := s.sessions.Init(ctx, sess)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", email).Str("role", sess.Role).Msg("session initialised")
	return id, &sess, nil
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	if err := s.gateway.Register(ctx, in); err != nil {
		return err
	}
	// No session on registration: the user logs in afterwards.
	s.log.Info().Str("email", in.Email).Msg("account registered")
	return nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.log.Info().Msg("session cleared")
	return nil
}

// sessionFromToken builds the session from the token's claims. A token whose
// claims cannot be decoded still yields a usable session with the
// regular-user role; the portal never rejects a token the upstream issued.
func (s *AuthService) sessionFromToken(token, email string) domain.Session {
	sess := domain.Session{Token: token, Role: domain.RoleUser, Email: email}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		s.log.Warn().Err(err).Msg("could not decode token claims, defaulting role")
		return sess
	}

	if roleID, ok := claims["role_id"].(float64); ok {
		sess.Role = s.roles.Name(int(roleID))
	}
	if id, ok := claims["id"].(float64); ok {
		sess.UserID = int(id)
	}
	if em, ok := claims["email"].(string); ok && em != "" {
		sess.Email = em
	}
	return sess
}
