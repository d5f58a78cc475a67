package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/application"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

type leadPatchRequest struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Budget     *float64 `json:"budget"`
	Status     *string  `json:"status"`
	Interest   *string  `json:"interest"`
	AssignedTo *string  `json:"assigned_to"`
	Avatar     *string  `json:"avatar"`
	Notes      *string  `json:"notes"`
}

func (req leadPatchRequest) toPatch() domain.LeadPatch {
	patch := domain.LeadPatch{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Budget:     req.Budget,
		Interest:   req.Interest,
		AssignedTo: req.AssignedTo,
		Avatar:     req.Avatar,
		Notes:      req.Notes,
	}
	if req.Status != nil {
		status := domain.LeadStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.service.ListLeads(r.Context())
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	items := make([]application.LeadItem, 0, len(leads))
	for _, lead := range leads {
		items = append(items, application.NewLeadItem(lead))
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) addLead(w http.ResponseWriter, r *http.Request) {
	var req application.AddLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	lead, err := h.service.AddLead(r.Context(), req)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusCreated, application.NewLeadItem(lead))
}

func (h *Handler) getLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.service.GetLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, application.NewLeadItem(lead))
}

func (h *Handler) patchLead(w http.ResponseWriter, r *http.Request) {
	var req leadPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	lead, err := h.service.UpdateLead(r.Context(), chi.URLParam(r, "id"), req.toPatch())
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	if lead.ID == "" {
		writeSuccess(w, http.StatusOK, nil)
		return
	}
	writeSuccess(w, http.StatusOK, application.NewLeadItem(lead))
}

func (h *Handler) updateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	lead, ok, err := h.service.UpdateLeadStatus(r.Context(), chi.URLParam(r, "id"), domain.LeadStatus(req.Status))
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	if !ok {
		writeSuccess(w, http.StatusOK, nil)
		return
	}
	writeSuccess(w, http.StatusOK, application.NewLeadItem(lead))
}

func (h *Handler) advanceLead(w http.ResponseWriter, r *http.Request) {
	lead, ok, err := h.service.AdvanceLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	if !ok {
		writeSuccess(w, http.StatusOK, nil)
		return
	}
	writeSuccess(w, http.StatusOK, application.NewLeadItem(lead))
}
