package domain

import "fmt"

// ValidateLeadPatch checks each present field before any of the patch is
// merged, so a rejected patch leaves the lead fully untouched.
func ValidateLeadPatch(p LeadPatch) error {
	if p.Budget != nil && *p.Budget < 0 {
		return fmt.Errorf("%w: budget must be non-negative", ErrInvalidInput)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown lead status %q", ErrInvalidInput, *p.Status)
	}
	return nil
}

// ValidatePropertyPatch checks each present field of a property update.
func ValidatePropertyPatch(p PropertyPatch) error {
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if p.Beds != nil && *p.Beds < 0 {
		return fmt.Errorf("%w: beds must be non-negative", ErrInvalidInput)
	}
	if p.Baths != nil && *p.Baths < 0 {
		return fmt.Errorf("%w: baths must be non-negative", ErrInvalidInput)
	}
	if p.Sqft != nil && *p.Sqft < 0 {
		return fmt.Errorf("%w: sqft must be non-negative", ErrInvalidInput)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown property status %q", ErrInvalidInput, *p.Status)
	}
	if p.Type != nil && !p.Type.Valid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, *p.Type)
	}
	return nil
}
