package handlers

import (
	"net/http"

	"homeledger-go/models"
)

func (h *Handlers) CreateHouseholdMember(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	var req models.HouseholdMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := h.ctrl.CreateHouseholdMember(callID, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, member)
}

func (h *Handlers) UpdateHouseholdMember(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req models.HouseholdMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := h.ctrl.UpdateHouseholdMember(callID, id, req)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, member)
}

func (h *Handlers) DeleteHouseholdMember(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteHouseholdMember(callID, id); err != nil {
		h.writeControllerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetHouseholdMember(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	member, err := h.ctrl.GetHouseholdMember(claims.HouseholdID, id)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, member)
}

func (h *Handlers) ListHouseholdMembers(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}

	members, err := h.ctrl.ListHouseholdMembers(claims.HouseholdID)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, members)
}
