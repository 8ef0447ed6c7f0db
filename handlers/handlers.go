package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"homeledger-go/audit"
	"homeledger-go/config"
	"homeledger-go/controllers"
	"homeledger-go/middleware"
	"homeledger-go/utils"
)

// ErrorResponse is the standardized error payload.
type ErrorResponse struct {
	Status    int         `json:"status"`
	Error     string      `json:"error"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func sendError(w http.ResponseWriter, status int, err string, details interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:    status,
		Error:     err,
		Details:   details,
		Timestamp: time.Now(),
	})
}

func sendJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type Handlers struct {
	ctrl   *controllers.Controllers
	config *config.Config
}

func NewHandlers(ctrl *controllers.Controllers, cfg *config.Config) *Handlers {
	return &Handlers{
		ctrl:   ctrl,
		config: cfg,
	}
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
		"service":   "HomeLedger",
		"version":   "1.0.0",
	})
}

// writeControllerError maps domain error kinds to HTTP status codes. The
// mapping lives here so controllers stay free of presentation concerns.
func (h *Handlers) writeControllerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, controllers.ErrNotFound):
		sendError(w, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, controllers.ErrMissingAuditCall), errors.Is(err, audit.ErrMissingAuditCall):
		sendError(w, http.StatusUnauthorized, "Missing audit API call", nil)
	case errors.Is(err, controllers.ErrConflict):
		sendError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, controllers.ErrInvalidInput):
		sendError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		sendError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// requireClaims returns the authenticated caller or writes a 401.
func (h *Handlers) requireClaims(w http.ResponseWriter, r *http.Request) *utils.Claims {
	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
	}
	return claims
}

// requireApiCall returns the ApiCall id recorded for this request or writes
// a 500; every mutating handler runs behind the recording middleware.
func (h *Handlers) requireApiCall(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	callID, ok := middleware.GetApiCallID(r)
	if !ok {
		sendError(w, http.StatusInternalServerError, "API call was not recorded", nil)
	}
	return callID, ok
}

// decodeAndValidate decodes the JSON body into dst and runs the struct
// validator, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	if err := utils.ValidateStruct(dst); err != nil {
		sendError(w, http.StatusUnprocessableEntity, "Validation failed", utils.FormatValidationError(err))
		return false
	}
	return true
}

// pathUUID parses the {uuid} path variable.
func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["uuid"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid uuid", nil)
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page/limit query parameters, capping limit at 100.
func pagination(r *http.Request) (limit, offset int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}
	return limit, (page - 1) * limit
}
