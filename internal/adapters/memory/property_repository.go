package memory

import (
	"context"
	"sync"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

type PropertyRepository struct {
	mu         sync.Mutex
	properties []domain.Property
}

func NewPropertyRepository(seed []domain.Property) *PropertyRepository {
	repo := &PropertyRepository{properties: make([]domain.Property, 0, len(seed))}
	repo.properties = append(repo.properties, seed...)
	return repo
}

func (r *PropertyRepository) List(_ context.Context) ([]domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Property, len(r.properties))
	copy(out, r.properties)
	return out, nil
}

func (r *PropertyRepository) GetByID(_ context.Context, id string) (domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, property := range r.properties {
		if property.ID == id {
			return property, nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}

func (r *PropertyRepository) InsertFront(_ context.Context, property domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties = append([]domain.Property{property}, r.properties...)
	return nil
}

func (r *PropertyRepository) Update(_ context.Context, property domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.properties {
		if r.properties[i].ID == property.ID {
			r.properties[i] = property
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *PropertyRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.properties {
		if r.properties[i].ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
