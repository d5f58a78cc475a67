package unit

import (
	"context"
	"testing"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

func TestBoardColumnsGroupByStatusInDisplayOrder(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	columns, err := f.board.Columns(ctx)
	if err != nil {
		t.Fatalf("columns failed: %v", err)
	}
	if len(columns) != len(domain.StageOrder) {
		t.Fatalf("expected %d columns, got %d", len(domain.StageOrder), len(columns))
	}
	for i, status := range domain.StageOrder {
		if columns[i].Status != status {
			t.Fatalf("column %d: expected %s, got %s", i, status, columns[i].Status)
		}
	}

	newColumn := columns[0]
	if len(newColumn.Leads) != 2 {
		t.Fatalf("expected 2 leads in New, got %d", len(newColumn.Leads))
	}
	if newColumn.Leads[0].ID != "1" || newColumn.Leads[1].ID != "2" {
		t.Fatalf("expected store order within a column, got %s then %s", newColumn.Leads[0].ID, newColumn.Leads[1].ID)
	}

	closedColumn := columns[len(columns)-1]
	if closedColumn.Leads == nil || len(closedColumn.Leads) != 0 {
		t.Fatalf("empty column must be an empty slice")
	}
}

func TestBoardFilterToggleAndClear(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	f.board.ToggleFilter(domain.StatusNew)
	f.board.ToggleFilter(domain.StatusViewing)
	columns, err := f.board.Columns(ctx)
	if err != nil {
		t.Fatalf("columns failed: %v", err)
	}
	if len(columns) != 2 {
		t.Fatalf("expected only the filtered columns, got %d", len(columns))
	}
	if columns[0].Status != domain.StatusNew || columns[1].Status != domain.StatusViewing {
		t.Fatalf("filtered columns must keep display order")
	}

	f.board.ToggleFilter(domain.StatusViewing)
	f.board.ToggleFilter(domain.StatusNew)
	columns, _ = f.board.Columns(ctx)
	if len(columns) != len(domain.StageOrder) {
		t.Fatalf("double toggle must restore the full board")
	}

	f.board.ToggleFilter(domain.StatusClosed)
	f.board.ClearFilters()
	if len(f.board.ActiveFilters()) != 0 {
		t.Fatalf("clear must empty the filter set")
	}
	columns, _ = f.board.Columns(ctx)
	if len(columns) != len(domain.StageOrder) {
		t.Fatalf("cleared board must show every column")
	}
}

func TestBoardDropMovesDraggedLead(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	f.board.DragStart("2")
	f.board.DragOver(domain.StatusContacted)
	lead, moved, err := f.board.Drop(ctx, domain.StatusContacted)
	if err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	if !moved {
		t.Fatalf("expected drop to move the lead")
	}
	if lead.Status != domain.StatusContacted {
		t.Fatalf("expected dropped lead in Contacted, got %s", lead.Status)
	}

	// Drag state is consumed by the drop.
	_, moved, err = f.board.Drop(ctx, domain.StatusViewing)
	if err != nil {
		t.Fatalf("second drop failed: %v", err)
	}
	if moved {
		t.Fatalf("drop without an active drag must be a no-op")
	}
}

func TestBoardDropOnSameColumnRecordsNothing(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()
	ctx := context.Background()

	before, _ := f.service.GetLead(ctx, "1")
	f.board.DragStart("1")
	_, moved, err := f.board.Drop(ctx, before.Status)
	if err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	if moved {
		t.Fatalf("same-column drop must record nothing")
	}
	after, _ := f.service.GetLead(ctx, "1")
	if len(after.Activities) != len(before.Activities) {
		t.Fatalf("same-column drop grew the activity log")
	}
}

func TestBoardDragLeaveClearsTarget(t *testing.T) {
	t.Parallel()

	f := newSeededFixture()

	f.board.DragStart("1")
	f.board.DragOver(domain.StatusClosed)
	f.board.DragLeave()

	f.board.SelectLead("3")
	if f.board.SelectedLead() != "3" {
		t.Fatalf("selection must persist until changed")
	}
}
