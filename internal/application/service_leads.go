package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// AddLead inserts a new lead at the front of the collection. A missing id is
// replaced with a generated one, a missing creation time defaults to now, and
// a creation activity is prepended ahead of any activities the caller
// supplied. Duplicate ids are not checked; callers supply unique tokens.
func (s *Service) AddLead(ctx context.Context, req AddLeadRequest) (domain.Lead, error) {
	status := domain.StatusNew
	if strings.TrimSpace(req.Status) != "" {
		status = domain.LeadStatus(req.Status)
		if !status.Valid() {
			return domain.Lead{}, fmt.Errorf("%w: unknown lead status %q", domain.ErrInvalidInput, req.Status)
		}
	}
	if req.Budget < 0 {
		return domain.Lead{}, fmt.Errorf("%w: budget must be non-negative", domain.ErrInvalidInput)
	}

	now := s.nowFn()
	lead := domain.Lead{
		ID:         strings.TrimSpace(req.ID),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Budget:     req.Budget,
		Status:     status,
		Interest:   req.Interest,
		AssignedTo: req.AssignedTo,
		Avatar:     req.Avatar,
		Notes:      req.Notes,
		CreatedAt:  now,
	}
	if lead.ID == "" {
		lead.ID = s.idFn()
	}
	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		lead.CreatedAt = req.CreatedAt.UTC()
	}
	if lead.Avatar == "" && lead.Name != "" {
		lead.Avatar = avatarURL(lead.Name)
	}

	lead.Prepend(domain.CreationActivity(now))
	if err := s.leads.InsertFront(ctx, lead); err != nil {
		return domain.Lead{}, err
	}

	s.publish(ctx, "lead.created", lead.ID, map[string]any{
		"lead_id": lead.ID,
		"status":  lead.Status,
	})
	return lead, nil
}

// UpdateLeadStatus moves a lead to the given stage and prepends exactly one
// status_change activity. An unknown id or an unchanged status is a silent
// no-op: the second return reports whether anything was recorded.
func (s *Service) UpdateLeadStatus(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, bool, error) {
	if !status.Valid() {
		return domain.Lead{}, false, fmt.Errorf("%w: unknown lead status %q", domain.ErrInvalidInput, status)
	}

	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return domain.Lead{}, false, nil
	}

	activity, ok := domain.StatusChangeActivity(lead.Status, status, s.nowFn())
	if !ok {
		return lead, false, nil
	}

	lead.Status = status
	lead.Prepend(activity)
	if err := s.leads.Update(ctx, lead); err != nil {
		return domain.Lead{}, false, err
	}

	s.publish(ctx, "lead.status_changed", lead.ID, map[string]any{
		"lead_id": lead.ID,
		"status":  lead.Status,
	})
	return lead, true, nil
}

// AdvanceLead moves a lead to the status immediately following its current
// one in the display order. At Closed there is no next stage and the call is
// a no-op.
func (s *Service) AdvanceLead(ctx context.Context, id string) (domain.Lead, bool, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return domain.Lead{}, false, nil
	}
	next, ok := lead.Status.Next()
	if !ok {
		return lead, false, nil
	}
	return s.UpdateLeadStatus(ctx, id, next)
}

// UpdateLead applies a partial update. The assignment and budget audit rules
// are evaluated against the lead's state BEFORE the merge; every produced
// activity shares the same instant and all of them precede the pre-existing
// entries. A status inside the patch is applied directly without a
// status_change activity; only UpdateLeadStatus logs those.
func (s *Service) UpdateLead(ctx context.Context, id string, patch domain.LeadPatch) (domain.Lead, error) {
	if err := domain.ValidateLeadPatch(patch); err != nil {
		return domain.Lead{}, err
	}

	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return domain.Lead{}, nil
	}

	now := s.nowFn()
	var produced []domain.LeadActivity
	if patch.AssignedTo != nil {
		if activity, ok := domain.AssignmentActivity(lead.AssignedTo, *patch.AssignedTo, now); ok {
			produced = append(produced, activity)
		}
	}
	if patch.Budget != nil {
		if activity, ok := domain.BudgetActivity(lead.Budget, *patch.Budget, now); ok {
			produced = append(produced, activity)
		}
	}

	mergeLeadPatch(&lead, patch)
	lead.Prepend(produced...)
	if err := s.leads.Update(ctx, lead); err != nil {
		return domain.Lead{}, err
	}

	s.publish(ctx, "lead.updated", lead.ID, map[string]any{
		"lead_id":    lead.ID,
		"activities": len(produced),
	})
	return lead, nil
}

func (s *Service) GetLead(ctx context.Context, id string) (domain.Lead, error) {
	return s.leads.GetByID(ctx, id)
}

func (s *Service) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List(ctx)
}

// mergeLeadPatch is a shallow merge; CreatedAt and Activities are never
// touched by a patch.
func mergeLeadPatch(lead *domain.Lead, patch domain.LeadPatch) {
	if patch.Name != nil {
		lead.Name = *patch.Name
	}
	if patch.Email != nil {
		lead.Email = *patch.Email
	}
	if patch.Phone != nil {
		lead.Phone = *patch.Phone
	}
	if patch.Budget != nil {
		lead.Budget = *patch.Budget
	}
	if patch.Status != nil {
		lead.Status = *patch.Status
	}
	if patch.Interest != nil {
		lead.Interest = *patch.Interest
	}
	if patch.AssignedTo != nil {
		lead.AssignedTo = *patch.AssignedTo
	}
	if patch.Avatar != nil {
		lead.Avatar = *patch.Avatar
	}
	if patch.Notes != nil {
		lead.Notes = *patch.Notes
	}
}
