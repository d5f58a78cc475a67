package http

import (
	"encoding/json"
	"net/http"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/application"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

type boardView struct {
	Columns       []application.Column `json:"columns"`
	ActiveFilters []domain.LeadStatus  `json:"active_filters"`
	SelectedLead  string               `json:"selected_lead,omitempty"`
}

func (h *Handler) pipelineBoard(w http.ResponseWriter, r *http.Request) {
	columns, err := h.board.Columns(r.Context())
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, boardView{
		Columns:       columns,
		ActiveFilters: h.board.ActiveFilters(),
		SelectedLead:  h.board.SelectedLead(),
	})
}

func (h *Handler) toggleFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	status := domain.LeadStatus(req.Status)
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "unknown lead status")
		return
	}
	h.board.ToggleFilter(status)
	writeSuccess(w, http.StatusOK, h.board.ActiveFilters())
}

func (h *Handler) clearFilters(w http.ResponseWriter, _ *http.Request) {
	h.board.ClearFilters()
	writeSuccess(w, http.StatusOK, h.board.ActiveFilters())
}

func (h *Handler) selectLead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LeadID string `json:"lead_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	h.board.SelectLead(req.LeadID)
	writeMessage(w, http.StatusOK, "selection updated")
}

func (h *Handler) dragStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LeadID string `json:"lead_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	h.board.DragStart(req.LeadID)
	writeMessage(w, http.StatusOK, "drag started")
}

func (h *Handler) dragOver(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Column string `json:"column"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	h.board.DragOver(domain.LeadStatus(req.Column))
	writeMessage(w, http.StatusOK, "drag target updated")
}

func (h *Handler) dragLeave(w http.ResponseWriter, _ *http.Request) {
	h.board.DragLeave()
	writeMessage(w, http.StatusOK, "drag target cleared")
}

func (h *Handler) drop(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Column string `json:"column"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	column := domain.LeadStatus(req.Column)
	if !column.Valid() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "unknown lead status")
		return
	}
	lead, moved, err := h.board.Drop(r.Context(), column)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	if !moved {
		writeSuccess(w, http.StatusOK, nil)
		return
	}
	writeSuccess(w, http.StatusOK, application.NewLeadItem(lead))
}
