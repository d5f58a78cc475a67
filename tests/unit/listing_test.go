package unit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/application"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

func TestListingSaveCreateUsesFallbacks(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	f.desk.OpenAdd()
	form := f.desk.Form()
	form.Title = "Hillside Bungalow"
	form.Address = "9 Summit Rd"
	form.Price = "320000"
	f.desk.SetForm(form)

	saved, err := f.desk.Save(ctx)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.Beds != 3 || saved.Baths != 2 || saved.Sqft != 1500 {
		t.Fatalf("expected numeric fallbacks 3/2/1500, got %v/%v/%v", saved.Beds, saved.Baths, saved.Sqft)
	}
	if saved.Type != domain.TypeHouse {
		t.Fatalf("expected fallback type House, got %s", saved.Type)
	}
	if saved.Status != domain.PropertyActive {
		t.Fatalf("expected default status Active, got %s", saved.Status)
	}
	if saved.Image == "" {
		t.Fatalf("expected placeholder image for an empty draft image")
	}

	if f.desk.Form().Title != "" {
		t.Fatalf("draft must reset after a successful save")
	}
}

func TestListingOpenEditPopulatesDraft(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	if err := f.desk.OpenEdit(ctx, "2"); err != nil {
		t.Fatalf("open edit failed: %v", err)
	}
	form := f.desk.Form()
	if form.Title != "Family Home with Garden" || form.Price != "850000" {
		t.Fatalf("unexpected draft: %+v", form)
	}
	if form.Baths != "2.5" {
		t.Fatalf("fractional numerics must round-trip, got %q", form.Baths)
	}
	if form.Specs != "" || form.Vibe != "" {
		t.Fatalf("AI helper fields must start blank for an edit")
	}
}

func TestListingSaveEditMergesDraft(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	if err := f.desk.OpenEdit(ctx, "4"); err != nil {
		t.Fatalf("open edit failed: %v", err)
	}
	form := f.desk.Form()
	form.Title = "Cozy Cottage Retreat"
	form.Status = domain.PropertyActive
	f.desk.SetForm(form)

	saved, err := f.desk.Save(ctx)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.ID != "4" || saved.Title != "Cozy Cottage Retreat" || saved.Status != domain.PropertyActive {
		t.Fatalf("edit not applied: %+v", saved)
	}

	stored, err := f.service.GetProperty(ctx, "4")
	if err != nil {
		t.Fatalf("get property failed: %v", err)
	}
	if stored.Title != "Cozy Cottage Retreat" {
		t.Fatalf("edit did not reach the store")
	}
}

func TestListingDeleteIsTwoStep(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	f.desk.RequestDelete("3")
	f.desk.CancelDelete()
	if err := f.desk.ConfirmDelete(ctx); err != nil {
		t.Fatalf("confirm with nothing staged failed: %v", err)
	}
	if _, err := f.service.GetProperty(ctx, "3"); err != nil {
		t.Fatalf("cancelled delete must keep the listing: %v", err)
	}

	f.desk.RequestDelete("3")
	if err := f.desk.ConfirmDelete(ctx); err != nil {
		t.Fatalf("confirm delete failed: %v", err)
	}
	if _, err := f.service.GetProperty(ctx, "3"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected listing gone after confirm, got %v", err)
	}
}

func TestGenerateDescriptionAppliesToDraft(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	f.generator.set("Sunlit corner unit with skyline views.", nil)
	f.desk.OpenAdd()
	f.desk.SetForm(application.ListingForm{
		Title:  "Corner Unit 5B",
		Specs:  "2 bed, 2 bath, floor-to-ceiling windows",
		Status: domain.PropertyActive,
	})

	description, err := f.desk.GenerateDescription(ctx)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if description != "Sunlit corner unit with skyline views." {
		t.Fatalf("unexpected description %q", description)
	}
	if f.desk.Form().Description != description {
		t.Fatalf("generated copy must land on the draft")
	}
}

func TestGenerateDescriptionRequiresTitleAndSpecs(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	f.desk.OpenAdd()
	f.desk.SetForm(application.ListingForm{Title: "Named but unspecced", Status: domain.PropertyActive})
	if _, err := f.desk.GenerateDescription(ctx); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input without specs, got %v", err)
	}
}

func TestGenerateDescriptionFailureLeavesDraft(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	f.desk.OpenAdd()
	form := application.ListingForm{
		Title:       "Corner Unit 5B",
		Specs:       "2 bed, 2 bath",
		Description: "Hand-written copy",
		Status:      domain.PropertyActive,
	}
	f.desk.SetForm(form)
	f.generator.set("", fmt.Errorf("model unavailable"))

	if _, err := f.desk.GenerateDescription(ctx); !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected generation failure, got %v", err)
	}
	if f.desk.Form().Description != "Hand-written copy" {
		t.Fatalf("failed generation must leave the draft untouched")
	}
}

func TestGenerateDescriptionDiscardsStaleCompletion(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	f.desk.OpenAdd()
	f.desk.SetForm(application.ListingForm{
		Title:  "Corner Unit 5B",
		Specs:  "2 bed, 2 bath",
		Status: domain.PropertyActive,
	})

	// While the first generation is in flight, a second request starts and
	// finishes; the first completion must then be discarded.
	f.generator.hook = func() {
		f.generator.set("Copy from the newer request.", nil)
		if _, err := f.desk.GenerateDescription(ctx); err != nil {
			t.Errorf("nested generate failed: %v", err)
		}
	}

	if _, err := f.desk.GenerateDescription(ctx); !errors.Is(err, domain.ErrStaleRequest) {
		t.Fatalf("expected stale completion to be discarded, got %v", err)
	}
	if f.desk.Form().Description != "Copy from the newer request." {
		t.Fatalf("the newer completion must win, got %q", f.desk.Form().Description)
	}
}
