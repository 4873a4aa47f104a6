package ports

import (
	"context"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

// SessionStore owns the persisted client state. A session has an explicit
// lifecycle: Init on login, Get on every authenticated request, Clear on
// logout or session expiry. Clear removes every session field atomically.
type SessionStore interface {
	Init(ctx context.Context, s domain.Session) (id string, err error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Clear(ctx context.Context, id string) error
}
