package domain

import "time"

// LeadStatus is the pipeline column a lead currently occupies.
// Any status is reachable from any other via an explicit status update;
// only the "advance" operation walks StageOrder.
type LeadStatus string

const (
	StatusNew         LeadStatus = "New"
	StatusContacted   LeadStatus = "Contacted"
	StatusViewing     LeadStatus = "Viewing"
	StatusNegotiation LeadStatus = "Negotiation"
	StatusClosed      LeadStatus = "Closed"
)

// StageOrder is the fixed display order of the pipeline columns.
var StageOrder = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusViewing,
	StatusNegotiation,
	StatusClosed,
}

// Next returns the status immediately following s in StageOrder.
// The second return is false at Closed (advance is disabled there)
// and for unknown statuses.
func (s LeadStatus) Next() (LeadStatus, bool) {
	for i, status := range StageOrder {
		if status == s {
			if i == len(StageOrder)-1 {
				return s, false
			}
			return StageOrder[i+1], true
		}
	}
	return s, false
}

// Valid reports whether s is one of the five pipeline statuses.
func (s LeadStatus) Valid() bool {
	for _, status := range StageOrder {
		if status == s {
			return true
		}
	}
	return false
}

// Lead is a prospective client tracked through the sales pipeline.
// CreatedAt is set once at creation and never updated; Activities are kept
// newest-first and are append-only in effect (entries are prepended, never
// edited or removed).
type Lead struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Budget     float64
	Status     LeadStatus
	Interest   string
	AssignedTo string
	Avatar     string
	Notes      string
	CreatedAt  time.Time
	Activities []LeadActivity
}

// Prepend pushes activities in front of the lead's existing log, keeping the
// newest-first invariant. The given activities precede everything already
// recorded.
func (l *Lead) Prepend(activities ...LeadActivity) {
	if len(activities) == 0 {
		return
	}
	l.Activities = append(append([]LeadActivity{}, activities...), l.Activities...)
}

// LeadPatch is a partial update to a lead. Nil fields are left untouched.
// A non-nil Status is applied directly and does NOT produce a status_change
// activity; only the status-update operation logs those.
type LeadPatch struct {
	Name       *string
	Email      *string
	Phone      *string
	Budget     *float64
	Status     *LeadStatus
	Interest   *string
	AssignedTo *string
	Avatar     *string
	Notes      *string
}
