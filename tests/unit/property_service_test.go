package unit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/application"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

func TestAddPropertyDefaultsAndFrontInsert(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	property, err := f.service.AddProperty(ctx, application.AddPropertyRequest{
		Title:   "Riverside Studio",
		Address: "12 Quay St, Riverside",
		Price:   275000,
	})
	if err != nil {
		t.Fatalf("add property failed: %v", err)
	}
	if property.ID == "" {
		t.Fatalf("expected generated property id")
	}
	if property.Type != domain.TypeHouse {
		t.Fatalf("expected default type House, got %s", property.Type)
	}
	if property.Status != domain.PropertyActive {
		t.Fatalf("expected default status Active, got %s", property.Status)
	}
	if !strings.Contains(property.Image, property.ID) {
		t.Fatalf("expected placeholder image seeded by id, got %q", property.Image)
	}

	all, err := f.service.ListProperties(ctx, "")
	if err != nil {
		t.Fatalf("list properties failed: %v", err)
	}
	if all[0].ID != property.ID {
		t.Fatalf("expected new property at front, got %s", all[0].ID)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 properties, got %d", len(all))
	}
}

func TestAddPropertyRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.AddProperty(ctx, application.AddPropertyRequest{Title: "X", Type: "Castle"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid type rejection, got %v", err)
	}
	if _, err := f.service.AddProperty(ctx, application.AddPropertyRequest{Title: "X", Price: -1}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected negative price rejection, got %v", err)
	}
}

func TestListPropertiesFilterIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	byTitle, err := f.service.ListProperties(ctx, "LOFT")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].Title != "Modern Downtown Loft" {
		t.Fatalf("expected the loft by title, got %d results", len(byTitle))
	}

	byAddress, err := f.service.ListProperties(ctx, "seattle")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byAddress) != 1 || byAddress[0].Address != "123 Main St, Downtown, Seattle" {
		t.Fatalf("expected the Seattle match by address, got %d results", len(byAddress))
	}

	none, err := f.service.ListProperties(ctx, "zzz-nothing")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestUpdatePropertyMergesPatch(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	price := 475000.0
	status := domain.PropertySold
	property, ok, err := f.service.UpdateProperty(ctx, "1", domain.PropertyPatch{
		Price:  &price,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected an update to be applied")
	}
	if property.Price != 475000 || property.Status != domain.PropertySold {
		t.Fatalf("patch not merged: %+v", property)
	}
	if property.Title != "Modern Downtown Loft" {
		t.Fatalf("untouched fields must survive the merge")
	}
}

func TestUpdatePropertyUnknownIDIsSilent(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	price := 1.0
	_, ok, err := f.service.UpdateProperty(ctx, "999", domain.PropertyPatch{Price: &price})
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if ok {
		t.Fatalf("expected no update for an unknown id")
	}
}

func TestRemovePropertyUnknownIDLeavesCollection(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	if err := f.service.RemoveProperty(ctx, "999"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	all, _ := f.service.ListProperties(ctx, "")
	if len(all) != 4 {
		t.Fatalf("collection changed on a no-op delete, got %d", len(all))
	}
}

func TestRemovePropertyDeletes(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	if err := f.service.RemoveProperty(ctx, "2"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := f.service.GetProperty(ctx, "2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	all, _ := f.service.ListProperties(ctx, "")
	if len(all) != 3 {
		t.Fatalf("expected 3 properties left, got %d", len(all))
	}
}
