package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/services"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AuthHandler struct {
	UserService *services.UserService
}

func NewAuthHandler(service *services.UserService) *AuthHandler {
	return &AuthHandler{UserService: service}
}

func validateCredentials(email, password string) bool {
	if !strings.Contains(email, "@") {
		return false
	}
	if len(password) < 6 || len(password) > 72 {
		return false
	}
	return true
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	if !validateCredentials(user.Email, user.Password) {
		http.Error(w, "Invalid credentials format", http.StatusBadRequest)
		return
	}

	if err := h.UserService.RegisterUser(r.Context(), user); err != nil {
		if err.Error() == "user with email already exists" {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		logging.Logger.Errorf("Event ID: USER_REGISTER_FAILED, Description: Failed to register user %s: %v", user.Email, err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("Registration successful"))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if !validateCredentials(req.Email, req.Password) {
		http.Error(w, "Invalid credentials format", http.StatusBadRequest)
		return
	}

	token, user, err := h.UserService.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		logging.Logger.Warnf("Event ID: USER_LOGIN_FAILED, Description: Login failed for %s: %v", req.Email, err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
}
