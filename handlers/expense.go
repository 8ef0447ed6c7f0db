package handlers

import (
	"net/http"

	"homeledger-go/models"
)

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.ExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	expense, err := h.ctrl.CreateExpense(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, expense)
}

func (h *Handlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req models.ExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	expense, err := h.ctrl.UpdateExpense(callID, id, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, expense)
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteExpense(callID, id); err != nil {
		h.writeControllerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetExpense(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	expense, err := h.ctrl.GetExpense(claims.HouseholdID, id)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, expense)
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	expenses, err := h.ctrl.ListExpenses(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, expenses)
}
