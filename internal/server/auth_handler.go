package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-insight/internal/types"
)

// AuthHandler serves the registration and login endpoints.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
}

// NewAuthHandler creates an auth handler over the user and JWT services.
func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{userService: userService, jwtService: jwtService}
}

// Register creates an account and signs the first session token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if !decodeAuthRequest(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		status := HTTPStatus(err)
		writeAuthError(w, status, errorCode(status), err.Error())
		return
	}

	h.issueSession(w, http.StatusCreated, user)
}

// Login verifies credentials and signs a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !decodeAuthRequest(w, r, &req) {
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		status := HTTPStatus(err)
		writeAuthError(w, status, errorCode(status), err.Error())
		return
	}

	h.issueSession(w, http.StatusOK, user)
}

// issueSession signs a token for user and writes the auth payload.
func (h *AuthHandler) issueSession(w http.ResponseWriter, status int, user *types.User) {
	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "internal_error", "Failed to generate token")
		return
	}
	writeJSON(w, status, types.AuthResponse{User: user, Token: token})
}

// decodeAuthRequest parses and validates the JSON body into req, writing the
// error response itself when the payload is unusable.
func decodeAuthRequest(w http.ResponseWriter, r *http.Request, req interface{ Validate() error }) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "bad_request", "Invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		writeAuthError(w, http.StatusBadRequest, "validation_failed", validationMessage(err))
		return false
	}
	return true
}

// writeJSON encodes data as the response body. The handler methods are used
// directly as mux handlers, so they cannot reach Server's helpers.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data) //nolint:errcheck // response already committed
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": code, "message": message})
}

// validationMessage flattens a validator error into a single line; only the
// first violation is reported.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("validation error: %s - %s", verrs[0].Field(), verrs[0].Tag())
	}
	return "validation error: invalid request"
}
