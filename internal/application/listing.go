package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// ListingForm is the transient add/edit draft. Numeric fields stay textual
// until save, the way the form collects them.
type ListingForm struct {
	Title       string                `json:"title"`
	Address     string                `json:"address"`
	Price       string                `json:"price"`
	Beds        string                `json:"beds"`
	Baths       string                `json:"baths"`
	Sqft        string                `json:"sqft"`
	Status      domain.PropertyStatus `json:"status"`
	Specs       string                `json:"specs"`
	Vibe        string                `json:"vibe"`
	Description string                `json:"description"`
	Image       string                `json:"image"`
}

// ListingDesk is the listing view controller: it owns the form draft, the
// editing/delete selection, and the description-generation flow. Persistence
// is always delegated to the property store on the Service.
type ListingDesk struct {
	mu  sync.Mutex
	svc *Service

	form      ListingForm
	editingID string
	deleteID  string

	descGeneration generation
}

func NewListingDesk(svc *Service) *ListingDesk {
	return &ListingDesk{svc: svc, form: emptyListingForm()}
}

func emptyListingForm() ListingForm {
	return ListingForm{Status: domain.PropertyActive}
}

// OpenAdd resets the draft for a new listing.
func (d *ListingDesk) OpenAdd() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editingID = ""
	d.form = emptyListingForm()
}

// OpenEdit loads an existing listing into the draft. The AI helper fields
// (specs, vibe) always start blank for an edit.
func (d *ListingDesk) OpenEdit(ctx context.Context, id string) error {
	property, err := d.svc.GetProperty(ctx, id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.editingID = property.ID
	d.form = ListingForm{
		Title:       property.Title,
		Address:     property.Address,
		Price:       formatNumber(property.Price),
		Beds:        formatNumber(property.Beds),
		Baths:       formatNumber(property.Baths),
		Sqft:        formatNumber(property.Sqft),
		Status:      property.Status,
		Description: property.Description,
		Image:       property.Image,
	}
	return nil
}

// Form returns a copy of the current draft.
func (d *ListingDesk) Form() ListingForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// SetForm replaces the draft wholesale (field edits from the UI).
func (d *ListingDesk) SetForm(form ListingForm) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = form
}

// SetImage stores the uploaded image (a URI or data URI) on the draft.
func (d *ListingDesk) SetImage(dataURI string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form.Image = dataURI
}

// RemoveImage clears the draft image; save will fall back to a placeholder.
func (d *ListingDesk) RemoveImage() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form.Image = ""
}

// Save persists the draft: an update when a listing is being edited, a
// create otherwise. New listings get the usual numeric fallbacks and a
// House type. The draft resets after a successful save.
func (d *ListingDesk) Save(ctx context.Context) (domain.Property, error) {
	d.mu.Lock()
	form := d.form
	editingID := d.editingID
	d.mu.Unlock()

	var (
		saved domain.Property
		err   error
	)
	if editingID != "" {
		price := parseNumber(form.Price, 0)
		beds := parseNumber(form.Beds, 0)
		baths := parseNumber(form.Baths, 0)
		sqft := parseNumber(form.Sqft, 0)
		image := form.Image
		if image == "" {
			image = placeholderImage(editingID)
		}
		saved, _, err = d.svc.UpdateProperty(ctx, editingID, domain.PropertyPatch{
			Title:       &form.Title,
			Address:     &form.Address,
			Price:       &price,
			Beds:        &beds,
			Baths:       &baths,
			Sqft:        &sqft,
			Status:      &form.Status,
			Description: &form.Description,
			Image:       &image,
		})
	} else {
		saved, err = d.svc.AddProperty(ctx, AddPropertyRequest{
			Title:       form.Title,
			Address:     form.Address,
			Price:       parseNumber(form.Price, 0),
			Image:       form.Image,
			Beds:        parseNumber(form.Beds, 3),
			Baths:       parseNumber(form.Baths, 2),
			Sqft:        parseNumber(form.Sqft, 1500),
			Type:        string(domain.TypeHouse),
			Status:      string(form.Status),
			Description: form.Description,
		})
	}
	if err != nil {
		return domain.Property{}, err
	}

	d.mu.Lock()
	d.editingID = ""
	d.form = emptyListingForm()
	d.mu.Unlock()
	return saved, nil
}

// RequestDelete stages a listing for the confirmation step.
func (d *ListingDesk) RequestDelete(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deleteID = id
}

// CancelDelete drops the staged delete.
func (d *ListingDesk) CancelDelete() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deleteID = ""
}

// ConfirmDelete removes the staged listing. With nothing staged it is a
// no-op, matching the store's tolerance for absent ids.
func (d *ListingDesk) ConfirmDelete(ctx context.Context) error {
	d.mu.Lock()
	id := d.deleteID
	d.deleteID = ""
	d.mu.Unlock()

	if id == "" {
		return nil
	}
	return d.svc.RemoveProperty(ctx, id)
}

// GenerateDescription asks the external collaborator for listing copy and
// applies it to the draft. Title and specs are required context. A failure
// is surfaced as ErrGenerationFailed with the draft untouched, and a
// completion that lost the race to a newer request is discarded.
func (d *ListingDesk) GenerateDescription(ctx context.Context) (string, error) {
	d.mu.Lock()
	title, specs, vibe := d.form.Title, d.form.Specs, d.form.Vibe
	d.mu.Unlock()

	if strings.TrimSpace(title) == "" || strings.TrimSpace(specs) == "" {
		return "", fmt.Errorf("%w: title and specs are required", domain.ErrInvalidInput)
	}
	tone := vibe
	if tone == "" {
		tone = "Professional and inviting"
	}

	token := d.descGeneration.Next()
	description, err := d.svc.generator.Generate(ctx, title, specs, tone)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if !d.descGeneration.IsCurrent(token) {
		return "", domain.ErrStaleRequest
	}

	d.mu.Lock()
	d.form.Description = description
	d.mu.Unlock()
	return description, nil
}

func parseNumber(raw string, fallback float64) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value == 0 {
		return fallback
	}
	return value
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
