package domain

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// ActivityType classifies one audit-trail entry on a lead.
type ActivityType string

const (
	ActivityCreation     ActivityType = "creation"
	ActivityStatusChange ActivityType = "status_change"
	ActivityAssignment   ActivityType = "assignment"
	ActivityNote         ActivityType = "note"
	ActivityUpdate       ActivityType = "update"
)

// LeadActivity is an immutable audit-trail entry describing one change to a
// lead. Entries for a given lead stay in non-increasing date order because
// new entries are only ever prepended.
type LeadActivity struct {
	ID          string
	Type        ActivityType
	Description string
	Date        time.Time
}

// CreationActivity is the first entry of every lead's log.
func CreationActivity(at time.Time) LeadActivity {
	return LeadActivity{
		ID:          uuid.NewString(),
		Type:        ActivityCreation,
		Description: "Lead created",
		Date:        at,
	}
}

// StatusChangeActivity derives the audit entry for a stage transition.
// Nothing is loggable when the status did not actually change.
func StatusChangeActivity(old, updated LeadStatus, at time.Time) (LeadActivity, bool) {
	if updated == old {
		return LeadActivity{}, false
	}
	return LeadActivity{
		ID:          uuid.NewString(),
		Type:        ActivityStatusChange,
		Description: "Status updated to " + string(updated),
		Date:        at,
	}, true
}

// AssignmentActivity derives the audit entry for an agent reassignment.
func AssignmentActivity(old, updated string, at time.Time) (LeadActivity, bool) {
	if updated == old {
		return LeadActivity{}, false
	}
	description := "Unassigned"
	if updated != "" {
		description = "Assigned to " + updated
	}
	return LeadActivity{
		ID:          uuid.NewString(),
		Type:        ActivityAssignment,
		Description: description,
		Date:        at,
	}, true
}

// BudgetActivity derives the audit entry for a budget change. A change to
// zero is treated as not loggable, so a legitimate reduction to 0 goes
// unlogged. Callers rely on that.
func BudgetActivity(old, updated float64, at time.Time) (LeadActivity, bool) {
	if updated == old || updated == 0 {
		return LeadActivity{}, false
	}
	return LeadActivity{
		ID:          uuid.NewString(),
		Type:        ActivityUpdate,
		Description: "Budget updated to $" + humanize.Commaf(updated),
		Date:        at,
	}, true
}
