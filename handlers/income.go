package handlers

import (
	"net/http"

	"homeledger-go/models"
)

func (h *Handlers) CreateIncome(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.IncomeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	income, err := h.ctrl.CreateIncome(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, income)
}

func (h *Handlers) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req models.IncomeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	income, err := h.ctrl.UpdateIncome(callID, id, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, income)
}

func (h *Handlers) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteIncome(callID, id); err != nil {
		h.writeControllerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetIncome(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	income, err := h.ctrl.GetIncome(claims.HouseholdID, id)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, income)
}

func (h *Handlers) ListIncomes(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	incomes, err := h.ctrl.ListIncomes(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, incomes)
}
