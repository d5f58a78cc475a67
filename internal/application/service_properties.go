package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// AddProperty prepends a new listing with a generated id. An empty image
// falls back to a placeholder URL so cards always render.
func (s *Service) AddProperty(ctx context.Context, req AddPropertyRequest) (domain.Property, error) {
	propertyType := domain.TypeHouse
	if strings.TrimSpace(req.Type) != "" {
		propertyType = domain.PropertyType(req.Type)
		if !propertyType.Valid() {
			return domain.Property{}, fmt.Errorf("%w: unknown property type %q", domain.ErrInvalidInput, req.Type)
		}
	}
	status := domain.PropertyActive
	if strings.TrimSpace(req.Status) != "" {
		status = domain.PropertyStatus(req.Status)
		if !status.Valid() {
			return domain.Property{}, fmt.Errorf("%w: unknown property status %q", domain.ErrInvalidInput, req.Status)
		}
	}
	if req.Price < 0 || req.Beds < 0 || req.Baths < 0 || req.Sqft < 0 {
		return domain.Property{}, fmt.Errorf("%w: numeric fields must be non-negative", domain.ErrInvalidInput)
	}

	property := domain.Property{
		ID:          s.idFn(),
		Title:       req.Title,
		Address:     req.Address,
		Price:       req.Price,
		Image:       req.Image,
		Beds:        req.Beds,
		Baths:       req.Baths,
		Sqft:        req.Sqft,
		Type:        propertyType,
		Status:      status,
		Description: req.Description,
	}
	if property.Image == "" {
		property.Image = placeholderImage(property.ID)
	}

	if err := s.properties.InsertFront(ctx, property); err != nil {
		return domain.Property{}, err
	}
	s.publish(ctx, "property.created", property.ID, map[string]any{
		"property_id": property.ID,
		"status":      property.Status,
	})
	return property, nil
}

// UpdateProperty merges the patch into the listing with the given id.
// An unknown id is a silent no-op; the second return reports whether a
// listing was updated.
func (s *Service) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, bool, error) {
	if err := domain.ValidatePropertyPatch(patch); err != nil {
		return domain.Property{}, false, err
	}

	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return domain.Property{}, false, nil
	}

	mergePropertyPatch(&property, patch)
	if err := s.properties.Update(ctx, property); err != nil {
		return domain.Property{}, false, err
	}
	s.publish(ctx, "property.updated", property.ID, map[string]any{
		"property_id": property.ID,
	})
	return property, true, nil
}

// RemoveProperty deletes the listing with the given id. An unknown id leaves
// the collection unchanged and raises no error.
func (s *Service) RemoveProperty(ctx context.Context, id string) error {
	if err := s.properties.Delete(ctx, id); err != nil {
		return nil
	}
	s.publish(ctx, "property.deleted", id, map[string]any{
		"property_id": id,
	})
	return nil
}

// ListProperties returns listings whose title or address contains the filter
// text, case-insensitively. An empty filter matches everything. Matching is
// plain substring.
func (s *Service) ListProperties(ctx context.Context, filter string) ([]domain.Property, error) {
	properties, err := s.properties.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(filter)
	if needle == "" {
		return properties, nil
	}
	matched := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Address), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *Service) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	return s.properties.GetByID(ctx, id)
}

func placeholderImage(seed string) string {
	return "https://picsum.photos/400/300?random=" + seed
}

func mergePropertyPatch(property *domain.Property, patch domain.PropertyPatch) {
	if patch.Title != nil {
		property.Title = *patch.Title
	}
	if patch.Address != nil {
		property.Address = *patch.Address
	}
	if patch.Price != nil {
		property.Price = *patch.Price
	}
	if patch.Image != nil {
		property.Image = *patch.Image
	}
	if patch.Beds != nil {
		property.Beds = *patch.Beds
	}
	if patch.Baths != nil {
		property.Baths = *patch.Baths
	}
	if patch.Sqft != nil {
		property.Sqft = *patch.Sqft
	}
	if patch.Type != nil {
		property.Type = *patch.Type
	}
	if patch.Status != nil {
		property.Status = *patch.Status
	}
	if patch.Description != nil {
		property.Description = *patch.Description
	}
}
