package ports

import (
	"context"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// SessionSlotStore mirrors the authenticated identity into a process-wide
// single slot keyed by the fixed application name, the way the browser UI
// mirrored it to local storage. Load's second return is false when no
// identity is persisted.
type SessionSlotStore interface {
	Save(ctx context.Context, identity domain.Identity) error
	Load(ctx context.Context) (domain.Identity, bool, error)
	Clear(ctx context.Context) error
}
