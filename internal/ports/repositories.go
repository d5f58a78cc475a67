package ports

import (
	"context"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// LeadRepository owns the lead collection. List order is insertion order,
// newest first; InsertFront preserves that.
type LeadRepository interface {
	List(ctx context.Context) ([]domain.Lead, error)
	GetByID(ctx context.Context, id string) (domain.Lead, error)
	InsertFront(ctx context.Context, lead domain.Lead) error
	// Update replaces the stored lead with the same id, returning
	// domain.ErrNotFound when absent so callers can decide whether absence
	// is an error or a no-op.
	Update(ctx context.Context, lead domain.Lead) error
}

// PropertyRepository owns the listing collection. There is no audit trail.
type PropertyRepository interface {
	List(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id string) (domain.Property, error)
	InsertFront(ctx context.Context, property domain.Property) error
	Update(ctx context.Context, property domain.Property) error
	Delete(ctx context.Context, id string) error
}
