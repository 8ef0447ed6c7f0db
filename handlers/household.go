package handlers

import (
	"net/http"

	"homeledger-go/models"
)

func (h *Handlers) GetHousehold(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	household, err := h.ctrl.GetHousehold(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, household)
}

func (h *Handlers) UpdateHousehold(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.HouseholdRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	household, err := h.ctrl.UpdateHousehold(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, household)
}
