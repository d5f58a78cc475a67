// Package memory holds the in-process stores backing a single back-office
// session. Each repository guards its collection with a mutex and hands out
// deep copies, so every operation is atomic from the caller's perspective
// and no caller can mutate shared state behind the store's back.
package memory

import (
	"context"
	"sync"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

type LeadRepository struct {
	mu    sync.Mutex
	leads []domain.Lead
}

func NewLeadRepository(seed []domain.Lead) *LeadRepository {
	repo := &LeadRepository{leads: make([]domain.Lead, 0, len(seed))}
	for _, lead := range seed {
		repo.leads = append(repo.leads, cloneLead(lead))
	}
	return repo
}

func (r *LeadRepository) List(_ context.Context) ([]domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		out = append(out, cloneLead(lead))
	}
	return out, nil
}

func (r *LeadRepository) GetByID(_ context.Context, id string) (domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lead := range r.leads {
		if lead.ID == id {
			return cloneLead(lead), nil
		}
	}
	return domain.Lead{}, domain.ErrNotFound
}

func (r *LeadRepository) InsertFront(_ context.Context, lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append([]domain.Lead{cloneLead(lead)}, r.leads...)
	return nil
}

func (r *LeadRepository) Update(_ context.Context, lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == lead.ID {
			r.leads[i] = cloneLead(lead)
			return nil
		}
	}
	return domain.ErrNotFound
}

func cloneLead(lead domain.Lead) domain.Lead {
	out := lead
	out.Activities = make([]domain.LeadActivity, len(lead.Activities))
	copy(out.Activities, lead.Activities)
	return out
}
