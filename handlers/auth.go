package handlers

import (
	"log"
	"net/http"

	"homeledger-go/models"
	"homeledger-go/utils"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	callID, ok := h.requireApiCall(w, r)
	if !ok {
		return
	}

	var req models.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.ctrl.Register(callID, req)
	if err != nil {
		log.Printf("Failed to register %s: %v", req.Email, err)
		h.writeControllerError(w, err)
		return
	}

	log.Printf("User registered: %s (household %s)", user.Email, user.HouseholdID)
	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.ctrl.Authenticate(req.Email, req.Password)
	if err != nil {
		log.Printf("Failed login attempt for %s", req.Email)
		sendError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.HouseholdID, user.Email)
	if err != nil {
		log.Printf("Failed to generate token for %s: %v", req.Email, err)
		sendError(w, http.StatusInternalServerError, "Failed to generate token", nil)
		return
	}

	sendJSON(w, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  *user,
	})
}
