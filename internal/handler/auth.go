package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kojiauth/kojiauth-go/internal/middleware"
	"github.com/kojiauth/kojiauth-go/internal/model"
	"github.com/kojiauth/kojiauth-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignUp handles POST /api/auth/signup requests.
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, model.ErrorResponse{
				Message: "request body too large",
				Code:    http.StatusRequestEntityTooLarge,
			})
			return
		}
		writeBadRequest(w, "invalid request body")
		return
	}

	resp, err := h.service.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, resp)
}

// HandleSignIn handles POST /api/auth/signin requests.
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, model.ErrorResponse{
				Message: "request body too large",
				Code:    http.StatusRequestEntityTooLarge,
			})
			return
		}
		writeBadRequest(w, "invalid request body")
		return
	}

	resp, err := h.service.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{
			Message: "unauthorized",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	resp, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}
