package handlers

import (
	"net/http"

	"homeledger-go/models"
)

func (h *Handlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.BudgetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	budget, err := h.ctrl.CreateBudget(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, budget)
}

func (h *Handlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req models.BudgetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	budget, err := h.ctrl.UpdateBudget(callID, id, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, budget)
}

func (h *Handlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteBudget(callID, id); err != nil {
		h.writeControllerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetBudget(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	budget, err := h.ctrl.GetBudget(claims.HouseholdID, id)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, budget)
}

func (h *Handlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	budgets, err := h.ctrl.ListBudgets(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, budgets)
}
