package handlers

import (
	"net/http"

	"homeledger-go/models"
)

func (h *Handlers) CreateFund(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.FundRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	fund, err := h.ctrl.CreateFund(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, fund)
}

func (h *Handlers) UpdateFund(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req models.FundRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	fund, err := h.ctrl.UpdateFund(callID, id, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, fund)
}

func (h *Handlers) DeleteFund(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteFund(callID, id); err != nil {
		h.writeControllerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetFund(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	fund, err := h.ctrl.GetFund(claims.HouseholdID, id)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, fund)
}

func (h *Handlers) ListFunds(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	funds, err := h.ctrl.ListFunds(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, funds)
}

func (h *Handlers) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.DepositRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deposit, err := h.ctrl.CreateDeposit(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, deposit)
}

func (h *Handlers) UpdateDeposit(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req models.DepositRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deposit, err := h.ctrl.UpdateDeposit(callID, id, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, deposit)
}

func (h *Handlers) DeleteDeposit(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteDeposit(callID, id); err != nil {
		h.writeControllerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetDeposit(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	deposit, err := h.ctrl.GetDeposit(claims.HouseholdID, id)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, deposit)
}

func (h *Handlers) ListDeposits(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	deposits, err := h.ctrl.ListDeposits(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, deposits)
}
