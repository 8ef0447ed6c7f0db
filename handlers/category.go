package handlers

import (
	"net/http"

	"homeledger-go/models"
)

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cat, err := h.ctrl.CreateCategory(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, cat)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req models.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cat, err := h.ctrl.UpdateCategory(callID, id, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, cat)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteCategory(callID, id); err != nil {
		h.writeControllerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	cat, err := h.ctrl.GetCategory(claims.HouseholdID, id)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, cat)
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	cats, err := h.ctrl.ListCategories(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, cats)
}

func (h *Handlers) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.SubcategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sub, err := h.ctrl.CreateSubcategory(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, sub)
}

func (h *Handlers) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req models.SubcategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sub, err := h.ctrl.UpdateSubcategory(callID, id, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, sub)
}

func (h *Handlers) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteSubcategory(callID, id); err != nil {
		h.writeControllerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	sub, err := h.ctrl.GetSubcategory(claims.HouseholdID, id)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, sub)
}

func (h *Handlers) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	subs, err := h.ctrl.ListSubcategories(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, subs)
}
