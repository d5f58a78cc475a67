package application

import (
	"context"
	"sync"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// Board is the pipeline view controller. It owns only transient view state
// (the selected lead, the active status filters, the drag source/target) and
// never mutates leads directly; every mutation intent is translated into a
// store operation on the Service.
type Board struct {
	mu  sync.Mutex
	svc *Service

	selectedLeadID string
	filters        map[domain.LeadStatus]bool
	dragLeadID     string
	dragOverColumn domain.LeadStatus
}

// Column is one kanban bucket: a status plus its leads in store insertion
// order.
type Column struct {
	Status domain.LeadStatus `json:"status"`
	Leads  []LeadItem        `json:"leads"`
}

func NewBoard(svc *Service) *Board {
	return &Board{
		svc:     svc,
		filters: make(map[domain.LeadStatus]bool),
	}
}

// Columns partitions the full lead collection into one bucket per status.
// With no active filters every column is returned; otherwise only the
// filtered statuses, always in display order.
func (b *Board) Columns(ctx context.Context) ([]Column, error) {
	leads, err := b.svc.ListLeads(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.LeadStatus][]LeadItem, len(domain.StageOrder))
	for _, lead := range leads {
		byStatus[lead.Status] = append(byStatus[lead.Status], NewLeadItem(lead))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	columns := make([]Column, 0, len(domain.StageOrder))
	for _, status := range domain.StageOrder {
		if len(b.filters) > 0 && !b.filters[status] {
			continue
		}
		bucket := byStatus[status]
		if bucket == nil {
			bucket = []LeadItem{}
		}
		columns = append(columns, Column{Status: status, Leads: bucket})
	}
	return columns, nil
}

// ToggleFilter adds the status to the active filter set, or removes it when
// already present. Toggling twice restores the original set.
func (b *Board) ToggleFilter(status domain.LeadStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.filters[status] {
		delete(b.filters, status)
		return
	}
	b.filters[status] = true
}

// ClearFilters empties the filter set so every column is shown again.
func (b *Board) ClearFilters() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters = make(map[domain.LeadStatus]bool)
}

// ActiveFilters returns the filtered statuses in display order.
func (b *Board) ActiveFilters() []domain.LeadStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	active := make([]domain.LeadStatus, 0, len(b.filters))
	for _, status := range domain.StageOrder {
		if b.filters[status] {
			active = append(active, status)
		}
	}
	return active
}

// SelectLead records the lead shown in the detail view; an empty id clears
// the selection.
func (b *Board) SelectLead(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selectedLeadID = id
}

func (b *Board) SelectedLead() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedLeadID
}

// DragStart records the lead being dragged.
func (b *Board) DragStart(leadID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dragLeadID = leadID
}

// DragOver records the column currently hovered.
func (b *Board) DragOver(status domain.LeadStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dragOverColumn = status
}

// DragLeave clears the hover target without ending the drag.
func (b *Board) DragLeave() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dragOverColumn = ""
}

// Drop ends the drag by requesting a status update unconditionally. A drop
// into the lead's own column reaches the store and dies on its equality
// check. The drag state is cleared either way.
func (b *Board) Drop(ctx context.Context, status domain.LeadStatus) (domain.Lead, bool, error) {
	b.mu.Lock()
	leadID := b.dragLeadID
	b.dragLeadID = ""
	b.dragOverColumn = ""
	b.mu.Unlock()

	if leadID == "" {
		return domain.Lead{}, false, nil
	}
	return b.svc.UpdateLeadStatus(ctx, leadID, status)
}
