package handlers

import (
	"net/http"
)

// GetAuditLogs lists the household's audit trail, newest first.
func (h *Handlers) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	limit, offset := pagination(r)

	logs, err := h.ctrl.ListAuditLogs(claims.HouseholdID, limit, offset)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, logs)
}

// GetApiCalls lists the household's recorded requests, newest first.
func (h *Handlers) GetApiCalls(w http.ResponseWriter, r *http.Request) {
	claims := h.requireClaims(w, r)
	if claims == nil {
		return
	}
	limit, offset := pagination(r)

	calls, err := h.ctrl.ListApiCalls(claims.HouseholdID, limit, offset)
	if err != nil {
		h.writeControllerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, calls)
}
