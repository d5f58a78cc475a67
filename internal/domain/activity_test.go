package domain

import (
	"testing"
	"time"
)

func TestStatusChangeActivity(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	if _, ok := StatusChangeActivity(StatusNew, StatusNew, now); ok {
		t.Fatalf("same status must not be loggable")
	}

	activity, ok := StatusChangeActivity(StatusNew, StatusContacted, now)
	if !ok {
		t.Fatalf("expected a loggable change")
	}
	if activity.Type != ActivityStatusChange {
		t.Fatalf("unexpected type %s", activity.Type)
	}
	if activity.Description != "Status updated to Contacted" {
		t.Fatalf("unexpected description %q", activity.Description)
	}
	if activity.ID == "" || !activity.Date.Equal(now) {
		t.Fatalf("entry must carry an id and the given instant")
	}
}

func TestAssignmentActivity(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	if _, ok := AssignmentActivity("Mike Ross", "Mike Ross", now); ok {
		t.Fatalf("unchanged assignee must not be loggable")
	}

	assigned, ok := AssignmentActivity("", "Mike Ross", now)
	if !ok || assigned.Description != "Assigned to Mike Ross" {
		t.Fatalf("unexpected assignment entry: %+v", assigned)
	}
	if assigned.Type != ActivityAssignment {
		t.Fatalf("unexpected type %s", assigned.Type)
	}

	unassigned, ok := AssignmentActivity("Mike Ross", "", now)
	if !ok || unassigned.Description != "Unassigned" {
		t.Fatalf("unexpected unassignment entry: %+v", unassigned)
	}
}

func TestBudgetActivity(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	if _, ok := BudgetActivity(450000, 450000, now); ok {
		t.Fatalf("unchanged budget must not be loggable")
	}
	if _, ok := BudgetActivity(450000, 0, now); ok {
		t.Fatalf("a change to zero goes unlogged")
	}

	activity, ok := BudgetActivity(0, 450000, now)
	if !ok {
		t.Fatalf("expected a loggable change")
	}
	if activity.Type != ActivityUpdate {
		t.Fatalf("unexpected type %s", activity.Type)
	}
	if activity.Description != "Budget updated to $450,000" {
		t.Fatalf("unexpected description %q", activity.Description)
	}

	fractional, ok := BudgetActivity(0, 475500.5, now)
	if !ok || fractional.Description != "Budget updated to $475,500.5" {
		t.Fatalf("unexpected fractional description: %+v", fractional)
	}
}

func TestLeadPrependKeepsNewestFirst(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	lead := Lead{Activities: []LeadActivity{CreationActivity(now.Add(-time.Hour))}}
	first, _ := AssignmentActivity("", "Sarah Miller", now)
	second, _ := BudgetActivity(0, 100000, now)
	lead.Prepend(first, second)

	if len(lead.Activities) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(lead.Activities))
	}
	if lead.Activities[0].ID != first.ID || lead.Activities[1].ID != second.ID {
		t.Fatalf("prepended entries must keep their given order at the front")
	}
	if lead.Activities[2].Type != ActivityCreation {
		t.Fatalf("pre-existing entries must follow the new ones")
	}
}

func TestLeadStatusNext(t *testing.T) {
	t.Parallel()

	order := []LeadStatus{StatusNew, StatusContacted, StatusViewing, StatusNegotiation, StatusClosed}
	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].Next()
		if !ok || next != order[i+1] {
			t.Fatalf("expected %s -> %s, got %s (ok=%v)", order[i], order[i+1], next, ok)
		}
	}
	if _, ok := StatusClosed.Next(); ok {
		t.Fatalf("Closed has no next stage")
	}
	if _, ok := LeadStatus("Archived").Next(); ok {
		t.Fatalf("unknown status has no next stage")
	}
}
