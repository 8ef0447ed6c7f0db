package handlers

import (
	"net/http"

	"homeledger-go/models"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	user, err := h.ctrl.GetUser(claims.UserID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, user)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}

	var req models.ProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.ctrl.UpdateProfile(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, user)
}
