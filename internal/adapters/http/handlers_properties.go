package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/application"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

type propertyPatchRequest struct {
	Title       *string  `json:"title"`
	Address     *string  `json:"address"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Beds        *float64 `json:"beds"`
	Baths       *float64 `json:"baths"`
	Sqft        *float64 `json:"sqft"`
	Type        *string  `json:"type"`
	Status      *string  `json:"status"`
	Description *string  `json:"description"`
}

func (req propertyPatchRequest) toPatch() domain.PropertyPatch {
	patch := domain.PropertyPatch{
		Title:       req.Title,
		Address:     req.Address,
		Price:       req.Price,
		Image:       req.Image,
		Beds:        req.Beds,
		Baths:       req.Baths,
		Sqft:        req.Sqft,
		Description: req.Description,
	}
	if req.Type != nil {
		kind := domain.PropertyType(*req.Type)
		patch.Type = &kind
	}
	if req.Status != nil {
		status := domain.PropertyStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.ListProperties(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	items := make([]application.PropertyItem, 0, len(properties))
	for _, property := range properties {
		items = append(items, application.NewPropertyItem(property))
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) addProperty(w http.ResponseWriter, r *http.Request) {
	var req application.AddPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	property, err := h.service.AddProperty(r.Context(), req)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusCreated, application.NewPropertyItem(property))
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.service.GetProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, application.NewPropertyItem(property))
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	property, ok, err := h.service.UpdateProperty(r.Context(), chi.URLParam(r, "id"), req.toPatch())
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	if !ok {
		writeSuccess(w, http.StatusOK, nil)
		return
	}
	writeSuccess(w, http.StatusOK, application.NewPropertyItem(property))
}

func (h *Handler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveProperty(r.Context(), chi.URLParam(r, "id")); err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeMessage(w, http.StatusOK, "property removed")
}

func (h *Handler) generateDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		Specs string `json:"specs"`
		Vibe  string `json:"vibe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	form := h.desk.Form()
	form.Title = req.Title
	form.Specs = req.Specs
	form.Vibe = req.Vibe
	h.desk.SetForm(form)

	description, err := h.desk.GenerateDescription(r.Context())
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"description": description})
}
